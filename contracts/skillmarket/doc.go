/*
Package skillmarket implements SkillMarket contract: a marketplace ledger of
skill-hours.

Every participant holds two balances: skill-hours and spendable currency.
Participants list skill-hours for sale at a fixed price per hour, other
participants buy them paying the price plus the service fee. The fee goes to
the administrator, the account that controls the exchange rate, the fee
percentage and the limit of the total amount of listed skill-hours.

Balances are seeded by the deployment only, the contract has no method that
creates them afterwards. The caller of every method is the sender of the
transaction, it must witness the call itself: calls made on its behalf by
other contracts within CalledByEntry scope are rejected. Failed checks throw an exception starting with a stable numeric
code, see marketconst package.

# Contract notifications

SkillsOffered notification. It is produced when a participant lists hours.

	SkillsOffered:
	  - name: participant
	    type: Hash160
	  - name: hours
	    type: Integer
	  - name: pricePerHour
	    type: Integer

SkillsRemoved notification. It is produced when a participant withdraws
hours from the offer.

	SkillsRemoved:
	  - name: participant
	    type: Hash160
	  - name: hours
	    type: Integer

SkillOfferCancelled notification. It is produced when an offer is reset.

	SkillOfferCancelled:
	  - name: participant
	    type: Hash160

SkillsExchanged notification. It is produced on every purchase; cost goes to
the provider, fee goes to the administrator.

	SkillsExchanged:
	  - name: buyer
	    type: Hash160
	  - name: provider
	    type: Hash160
	  - name: hours
	    type: Integer
	  - name: cost
	    type: Integer
	  - name: fee
	    type: Integer

SkillsTransferred notification. It is produced when skill-hours are moved
without payment.

	SkillsTransferred:
	  - name: provider
	    type: Hash160
	  - name: recipient
	    type: Hash160
	  - name: hours
	    type: Integer

ConfigurationUpdated notification. It is produced on every configuration
change.

	ConfigurationUpdated:
	  - name: key
	    type: String
	  - name: value
	    type: Integer
*/
package skillmarket

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'admin' -> interop.Hash160
   administrator of the market
 - 'skillRate', 'serviceFee', 'maxSkillsPerUser', 'reserveLimit' -> int
   configuration values
 - 'totalReserve' -> int
   total amount of listed skill-hours
 - 's'<interop.Hash160> -> int
   skill-hour balance, removed when it gets to zero
 - 'c'<interop.Hash160> -> int
   currency balance, removed when it gets to zero
 - 'o'<interop.Hash160> -> std.Serialize(Offer)
   offer of the participant, never removed

# Reserve
Reserve is raised by offerSkills and lowered by removeSkills only. Neither
exchangeSkills nor cancelSkillOffer touch it.
*/
