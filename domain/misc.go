package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// EscrowVaultAddress is the ledger account that holds items and funds
// while an auction is live.
const EscrowVaultAddress = Address("escrow-vault")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type InstanceRef string

func (r InstanceRef) String() string {
	return string(r)
}

type LogicRef string

func (r LogicRef) String() string {
	return string(r)
}

type Table string

const (
	TableAuctions        Table = "auctions"
	TableAuctionCounters Table = "auction_counters"
	TablePriceFeeds      Table = "price_feeds"
	TableEscrowRecords   Table = "escrow_records"
	TableBalances        Table = "balances"
	TableAllowances      Table = "allowances"
	TableItems           Table = "items"
	TableItemApprovals   Table = "item_approvals"
	TableInstances       Table = "instances"
	TableBeacons         Table = "beacons"
	TableEvents          Table = "events"
	TableOperators       Table = "operators"
)

// ToDecimal128 converts a decimal amount into mongo's decimal128
// representation, wide enough for any practical token supply.
func ToDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, xerrors.Errorf("parse decimal128 %s: %w", d, err)
	}
	return v, nil
}

// MustDecimal128 is ToDecimal128 for amounts already validated upstream.
func MustDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := ToDecimal128(d)
	if err != nil {
		panic(err)
	}
	return v
}

// FromDecimal128 converts a stored decimal128 back into a decimal amount.
func FromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, xerrors.Errorf("parse decimal %s: %w", v, err)
	}
	return d, nil
}

type TimeRange struct {
	Start time.Time
	End   time.Time
}
