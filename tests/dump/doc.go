/*
Package dump provides I/O operations for collected states of the SkillMarket
contract.

State collection (including storage) allows you to emulate work with "live"
contract. It is used by migration tests and by the snapshot export: a dump
pulled from a remote network can be replayed on a test chain or decoded into
a ledger without network access.

The package works with dumps stored in the file system using human-readable
encoding.
*/
package dump
