package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bidhaus/goauction/base/ctx"
)

// Balance is one account's holding of one asset.
type Balance struct {
	AssetKey  string               `bson:"assetKey"`
	Owner     Address              `bson:"owner"`
	Amount    primitive.Decimal128 `bson:"amount"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

// Allowance lets spender pull up to Amount of owner's asset via
// TransferFrom, mirroring the approve/transferFrom contract.
type Allowance struct {
	AssetKey  string               `bson:"assetKey"`
	Owner     Address              `bson:"owner"`
	Spender   Address              `bson:"spender"`
	Amount    primitive.Decimal128 `bson:"amount"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

// FungibleRepo is the custodial ledger for the native asset and every
// fungible token. Debits are conditional single-document updates, a
// failed debit changes nothing.
type FungibleRepo interface {
	BalanceOf(c ctx.Ctx, asset Asset, owner Address) (decimal.Decimal, error)
	AllowanceOf(c ctx.Ctx, asset Asset, owner, spender Address) (decimal.Decimal, error)

	// Credit adds amount to owner's balance, creating the row if needed.
	Credit(c ctx.Ctx, asset Asset, owner Address, amount decimal.Decimal) error

	// Debit subtracts amount, ErrInsufficientBalance when the guarded
	// update matches nothing.
	Debit(c ctx.Ctx, asset Asset, owner Address, amount decimal.Decimal) error

	// SetAllowance overwrites the (owner, spender) allowance.
	SetAllowance(c ctx.Ctx, asset Asset, owner, spender Address, amount decimal.Decimal) error

	// DebitAllowance subtracts amount from the (owner, spender)
	// allowance, ErrInsufficientAllowance when it cannot cover amount.
	DebitAllowance(c ctx.Ctx, asset Asset, owner, spender Address, amount decimal.Decimal) error
}

// FungibleUsecase is the fungible asset collaborator contract.
type FungibleUsecase interface {
	BalanceOf(c ctx.Ctx, asset Asset, owner Address) (decimal.Decimal, error)
	Approve(c ctx.Ctx, asset Asset, owner, spender Address, amount decimal.Decimal) error

	// Transfer moves amount from the caller to recipient.
	Transfer(c ctx.Ctx, asset Asset, from, to Address, amount decimal.Decimal) error

	// TransferFrom moves amount from owner to recipient on behalf of
	// spender, gated by a prior Approve.
	TransferFrom(c ctx.Ctx, asset Asset, spender, owner, to Address, amount decimal.Decimal) error

	// Mint credits freshly issued units, admin only.
	Mint(c ctx.Ctx, operator Address, asset Asset, to Address, amount decimal.Decimal) error
}
