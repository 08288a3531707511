package domain

import (
	"time"

	"github.com/bidhaus/goauction/base/ctx"
)

// Item is one unique collectible, identified by collection + tokenId.
type Item struct {
	Collection Address   `bson:"collection"`
	TokenId    TokenId   `bson:"tokenId"`
	Owner      Address   `bson:"owner"`
	Approved   Address   `bson:"approved,omitempty"`
	MintedAt   time.Time `bson:"mintedAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// ItemApproval records a setApprovalForAll grant: operator may move any
// of owner's items inside collection.
type ItemApproval struct {
	Collection Address   `bson:"collection"`
	Owner      Address   `bson:"owner"`
	Operator   Address   `bson:"operator"`
	Approved   bool      `bson:"approved"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

type ItemRepo interface {
	FindOne(c ctx.Ctx, collection Address, tokenId TokenId) (*Item, error)
	Insert(c ctx.Ctx, item *Item) error

	// SetOwner transfers ownership and clears the single-item approval,
	// guarded on the expected current owner.
	SetOwner(c ctx.Ctx, collection Address, tokenId TokenId, from, to Address) error

	SetApproved(c ctx.Ctx, collection Address, tokenId TokenId, approved Address) error

	FindApproval(c ctx.Ctx, collection Address, owner, operator Address) (*ItemApproval, error)
	UpsertApproval(c ctx.Ctx, approval *ItemApproval) error
}

// ItemUsecase is the unique-item collaborator contract.
type ItemUsecase interface {
	OwnerOf(c ctx.Ctx, collection Address, tokenId TokenId) (Address, error)
	Approve(c ctx.Ctx, caller Address, collection Address, tokenId TokenId, approved Address) error
	SetApprovalForAll(c ctx.Ctx, owner Address, collection Address, operator Address, approved bool) error
	IsApprovedOrOwner(c ctx.Ctx, spender Address, collection Address, tokenId TokenId) (bool, error)

	// TransferFrom moves the item, caller must be owner, approved for
	// the item, or an approved operator of the owner.
	TransferFrom(c ctx.Ctx, caller, from, to Address, collection Address, tokenId TokenId) error

	// Mint issues a new item to owner, admin only.
	Mint(c ctx.Ctx, operator Address, collection Address, tokenId TokenId, owner Address) error
}
