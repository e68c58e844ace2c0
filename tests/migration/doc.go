/*
Package migration provides framework to test migration of the SkillMarket
smart contract.

The contract keeps balances and offers of the marketplace participants. It is
updated on the fly, so data migration must be performed accurately, without
backward compatibility loss. The package provides services of Neo blockchain
and of the contract needed for testing. Test blockchain environment is based
on dumps of "real" contract instances (see package dump).
*/
package migration
