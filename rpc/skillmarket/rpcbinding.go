// Package skillmarket contains RPC wrappers for SkillMarket contract.
package skillmarket

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Offer is a contract-specific skillmarket.Offer type used by its methods.
type Offer struct {
	HoursOffered *big.Int
	PricePerHour *big.Int
}

// SkillsOfferedEvent represents "SkillsOffered" event emitted by the contract.
type SkillsOfferedEvent struct {
	Participant  util.Uint160
	Hours        *big.Int
	PricePerHour *big.Int
}

// SkillsRemovedEvent represents "SkillsRemoved" event emitted by the contract.
type SkillsRemovedEvent struct {
	Participant util.Uint160
	Hours       *big.Int
}

// SkillOfferCancelledEvent represents "SkillOfferCancelled" event emitted by the contract.
type SkillOfferCancelledEvent struct {
	Participant util.Uint160
}

// SkillsExchangedEvent represents "SkillsExchanged" event emitted by the contract.
type SkillsExchangedEvent struct {
	Buyer    util.Uint160
	Provider util.Uint160
	Hours    *big.Int
	Cost     *big.Int
	Fee      *big.Int
}

// SkillsTransferredEvent represents "SkillsTransferred" event emitted by the contract.
type SkillsTransferredEvent struct {
	Provider  util.Uint160
	Recipient util.Uint160
	Hours     *big.Int
}

// ConfigurationUpdatedEvent represents "ConfigurationUpdated" event emitted by the contract.
type ConfigurationUpdatedEvent struct {
	Key   string
	Value *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetAdministrator invokes `getAdministrator` method of contract.
func (c *ContractReader) GetAdministrator() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getAdministrator"))
}

// GetMaxSkillsPerUser invokes `getMaxSkillsPerUser` method of contract.
func (c *ContractReader) GetMaxSkillsPerUser() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getMaxSkillsPerUser"))
}

// GetServiceFee invokes `getServiceFee` method of contract.
func (c *ContractReader) GetServiceFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getServiceFee"))
}

// GetSkillBalance invokes `getSkillBalance` method of contract.
func (c *ContractReader) GetSkillBalance(participant util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSkillBalance", participant))
}

// GetSkillRate invokes `getSkillRate` method of contract.
func (c *ContractReader) GetSkillRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSkillRate"))
}

// GetSkillReserveLimit invokes `getSkillReserveLimit` method of contract.
func (c *ContractReader) GetSkillReserveLimit() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSkillReserveLimit"))
}

// GetSkillsForExchange invokes `getSkillsForExchange` method of contract.
func (c *ContractReader) GetSkillsForExchange(participant util.Uint160) (*Offer, error) {
	return itemToOffer(unwrap.Item(c.invoker.Call(c.hash, "getSkillsForExchange", participant)))
}

// GetStxBalance invokes `getStxBalance` method of contract.
func (c *ContractReader) GetStxBalance(participant util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getStxBalance", participant))
}

// GetTotalSkillReserve invokes `getTotalSkillReserve` method of contract.
func (c *ContractReader) GetTotalSkillReserve() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTotalSkillReserve"))
}

// ListOffers invokes `listOffers` method of contract.
func (c *ContractReader) ListOffers() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listOffers"))
}

// ListOffersExpanded is similar to ListOffers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListOffersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listOffers", _numOfIteratorItems))
}

// Offers returns up to n offers listed by the contract. Zero offers left
// after purchases or cancellation are included.
func (c *ContractReader) Offers(n int) ([]OfferEntry, error) {
	items, err := c.ListOffersExpanded(n)
	if err != nil {
		return nil, err
	}

	res := make([]OfferEntry, len(items))
	for i := range items {
		err = res[i].FromStackItem(items[i])
		if err != nil {
			return nil, fmt.Errorf("offer #%d: %w", i, err)
		}
	}

	return res, nil
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ApplyServiceFeeDiscount creates a transaction invoking `applyServiceFeeDiscount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ApplyServiceFeeDiscount(participant util.Uint160, discount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "applyServiceFeeDiscount", participant, discount)
}

// ApplyServiceFeeDiscountTransaction creates a transaction invoking `applyServiceFeeDiscount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApplyServiceFeeDiscountTransaction(participant util.Uint160, discount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "applyServiceFeeDiscount", participant, discount)
}

// ApplyServiceFeeDiscountUnsigned creates a transaction invoking `applyServiceFeeDiscount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApplyServiceFeeDiscountUnsigned(participant util.Uint160, discount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "applyServiceFeeDiscount", nil, participant, discount)
}

// CancelSkillOffer creates a transaction invoking `cancelSkillOffer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelSkillOffer() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelSkillOffer")
}

// CancelSkillOfferTransaction creates a transaction invoking `cancelSkillOffer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelSkillOfferTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelSkillOffer")
}

// CancelSkillOfferUnsigned creates a transaction invoking `cancelSkillOffer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelSkillOfferUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelSkillOffer", nil)
}

// ExchangeSkills creates a transaction invoking `exchangeSkills` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ExchangeSkills(provider util.Uint160, hours *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "exchangeSkills", provider, hours)
}

// ExchangeSkillsTransaction creates a transaction invoking `exchangeSkills` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExchangeSkillsTransaction(provider util.Uint160, hours *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "exchangeSkills", provider, hours)
}

// ExchangeSkillsUnsigned creates a transaction invoking `exchangeSkills` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExchangeSkillsUnsigned(provider util.Uint160, hours *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "exchangeSkills", nil, provider, hours)
}

// OfferSkills creates a transaction invoking `offerSkills` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OfferSkills(hours *big.Int, rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "offerSkills", hours, rate)
}

// OfferSkillsTransaction creates a transaction invoking `offerSkills` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OfferSkillsTransaction(hours *big.Int, rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "offerSkills", hours, rate)
}

// OfferSkillsUnsigned creates a transaction invoking `offerSkills` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OfferSkillsUnsigned(hours *big.Int, rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "offerSkills", nil, hours, rate)
}

// RemoveSkills creates a transaction invoking `removeSkills` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveSkills(hours *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeSkills", hours)
}

// RemoveSkillsTransaction creates a transaction invoking `removeSkills` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveSkillsTransaction(hours *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeSkills", hours)
}

// RemoveSkillsUnsigned creates a transaction invoking `removeSkills` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveSkillsUnsigned(hours *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeSkills", nil, hours)
}

// SetMaxSkillsPerUser creates a transaction invoking `setMaxSkillsPerUser` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMaxSkillsPerUser(limit *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMaxSkillsPerUser", limit)
}

// SetMaxSkillsPerUserTransaction creates a transaction invoking `setMaxSkillsPerUser` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMaxSkillsPerUserTransaction(limit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMaxSkillsPerUser", limit)
}

// SetMaxSkillsPerUserUnsigned creates a transaction invoking `setMaxSkillsPerUser` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMaxSkillsPerUserUnsigned(limit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMaxSkillsPerUser", nil, limit)
}

// SetReserveLimit creates a transaction invoking `setReserveLimit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReserveLimit(limit *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReserveLimit", limit)
}

// SetReserveLimitTransaction creates a transaction invoking `setReserveLimit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReserveLimitTransaction(limit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReserveLimit", limit)
}

// SetReserveLimitUnsigned creates a transaction invoking `setReserveLimit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReserveLimitUnsigned(limit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReserveLimit", nil, limit)
}

// SetServiceFee creates a transaction invoking `setServiceFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetServiceFee(feePercent *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setServiceFee", feePercent)
}

// SetServiceFeeTransaction creates a transaction invoking `setServiceFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetServiceFeeTransaction(feePercent *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setServiceFee", feePercent)
}

// SetServiceFeeUnsigned creates a transaction invoking `setServiceFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetServiceFeeUnsigned(feePercent *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setServiceFee", nil, feePercent)
}

// SetSkillRate creates a transaction invoking `setSkillRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSkillRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSkillRate", rate)
}

// SetSkillRateTransaction creates a transaction invoking `setSkillRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSkillRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSkillRate", rate)
}

// SetSkillRateUnsigned creates a transaction invoking `setSkillRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSkillRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSkillRate", nil, rate)
}

// TransferSkills creates a transaction invoking `transferSkills` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferSkills(provider util.Uint160, hours *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferSkills", provider, hours)
}

// TransferSkillsTransaction creates a transaction invoking `transferSkills` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferSkillsTransaction(provider util.Uint160, hours *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferSkills", provider, hours)
}

// TransferSkillsUnsigned creates a transaction invoking `transferSkills` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferSkillsUnsigned(provider util.Uint160, hours *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferSkills", nil, provider, hours)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// ViewActivityPage creates a transaction invoking `viewActivityPage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ViewActivityPage(participant util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "viewActivityPage", participant)
}

// ViewActivityPageTransaction creates a transaction invoking `viewActivityPage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ViewActivityPageTransaction(participant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "viewActivityPage", participant)
}

// ViewActivityPageUnsigned creates a transaction invoking `viewActivityPage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ViewActivityPageUnsigned(participant util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "viewActivityPage", nil, participant)
}

// itemToOffer converts stack item into *Offer.
func itemToOffer(item stackitem.Item, err error) (*Offer, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Offer)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Offer from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Offer) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.HoursOffered, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field HoursOffered: %w", err)
	}

	index++
	res.PricePerHour, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerHour: %w", err)
	}

	return nil
}

// OfferEntry is an element of `listOffers` iterator.
type OfferEntry struct {
	Participant util.Uint160
	Offer
}

// FromStackItem retrieves fields of OfferEntry from the given key-value
// [stackitem.Item].
func (res *OfferEntry) FromStackItem(item stackitem.Item) error {
	kv, ok := item.Value().([]stackitem.Item)
	if !ok || len(kv) != 2 {
		return errors.New("not a key-value pair")
	}

	var err error
	res.Participant, err = itemToUint160(kv[0])
	if err != nil {
		return fmt.Errorf("participant: %w", err)
	}

	return res.Offer.FromStackItem(kv[1])
}

// eventsFromApplicationLog collects items of all events with the given name
// from the provided [result.ApplicationLog] and decodes them with decode.
func eventsFromApplicationLog(log *result.ApplicationLog, name string, decode func(*stackitem.Array) error) error {
	if log == nil {
		return errors.New("nil application log")
	}

	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			err := decode(e.Item)
			if err != nil {
				return fmt.Errorf("failed to deserialize %sEvent from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
		}
	}

	return nil
}

// SkillsOfferedEventsFromApplicationLog retrieves a set of all emitted events
// with "SkillsOffered" name from the provided [result.ApplicationLog].
func SkillsOfferedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SkillsOfferedEvent, error) {
	var res []*SkillsOfferedEvent
	err := eventsFromApplicationLog(log, "SkillsOffered", func(item *stackitem.Array) error {
		event := new(SkillsOfferedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SkillsOfferedEvent or
// returns an error if it's not possible to do to so.
func (e *SkillsOfferedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Participant, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	e.Hours, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Hours: %w", err)
	}

	e.PricePerHour, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerHour: %w", err)
	}

	return nil
}

// SkillsRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "SkillsRemoved" name from the provided [result.ApplicationLog].
func SkillsRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SkillsRemovedEvent, error) {
	var res []*SkillsRemovedEvent
	err := eventsFromApplicationLog(log, "SkillsRemoved", func(item *stackitem.Array) error {
		event := new(SkillsRemovedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SkillsRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *SkillsRemovedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Participant, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	e.Hours, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Hours: %w", err)
	}

	return nil
}

// SkillOfferCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "SkillOfferCancelled" name from the provided [result.ApplicationLog].
func SkillOfferCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*SkillOfferCancelledEvent, error) {
	var res []*SkillOfferCancelledEvent
	err := eventsFromApplicationLog(log, "SkillOfferCancelled", func(item *stackitem.Array) error {
		event := new(SkillOfferCancelledEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SkillOfferCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *SkillOfferCancelledEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}

	e.Participant, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	return nil
}

// SkillsExchangedEventsFromApplicationLog retrieves a set of all emitted events
// with "SkillsExchanged" name from the provided [result.ApplicationLog].
func SkillsExchangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SkillsExchangedEvent, error) {
	var res []*SkillsExchangedEvent
	err := eventsFromApplicationLog(log, "SkillsExchanged", func(item *stackitem.Array) error {
		event := new(SkillsExchangedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SkillsExchangedEvent or
// returns an error if it's not possible to do to so.
func (e *SkillsExchangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 5)
	if err != nil {
		return err
	}

	e.Buyer, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	e.Provider, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Provider: %w", err)
	}

	e.Hours, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Hours: %w", err)
	}

	e.Cost, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Cost: %w", err)
	}

	e.Fee, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	return nil
}

// SkillsTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "SkillsTransferred" name from the provided [result.ApplicationLog].
func SkillsTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*SkillsTransferredEvent, error) {
	var res []*SkillsTransferredEvent
	err := eventsFromApplicationLog(log, "SkillsTransferred", func(item *stackitem.Array) error {
		event := new(SkillsTransferredEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SkillsTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *SkillsTransferredEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Provider, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Provider: %w", err)
	}

	e.Recipient, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	e.Hours, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Hours: %w", err)
	}

	return nil
}

// ConfigurationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConfigurationUpdated" name from the provided [result.ApplicationLog].
func ConfigurationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConfigurationUpdatedEvent, error) {
	var res []*ConfigurationUpdatedEvent
	err := eventsFromApplicationLog(log, "ConfigurationUpdated", func(item *stackitem.Array) error {
		event := new(ConfigurationUpdatedEvent)
		if err := event.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, event)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to ConfigurationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ConfigurationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Key, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[0])
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	e.Value, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}
