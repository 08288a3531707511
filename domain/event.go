package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goauction/base/ctx"
)

type EventType string

const (
	EventAuctionCreated  EventType = "AuctionCreated"
	EventNewBid          EventType = "NewBid"
	EventAuctionEnded    EventType = "AuctionEnded"
	EventInstanceCreated EventType = "InstanceCreated"
	EventBeaconUpgraded  EventType = "BeaconUpgraded"
)

// Event is the persisted form of an observable side effect.
type Event struct {
	Type        EventType   `bson:"type"`
	InstanceRef InstanceRef `bson:"instanceRef,omitempty"`
	EmittedAt   time.Time   `bson:"emittedAt"`
	Data        bson.M      `bson:"data"`
}

type AuctionCreatedEvent struct {
	AuctionId    int64                `bson:"auctionId"`
	Seller       Address              `bson:"seller"`
	Collection   Address              `bson:"collection"`
	TokenId      TokenId              `bson:"tokenId"`
	ReservePrice string               `bson:"reservePrice"`
}

type NewBidEvent struct {
	AuctionId       int64   `bson:"auctionId"`
	Bidder          Address `bson:"bidder"`
	Asset           string  `bson:"asset"`
	Amount          string  `bson:"amount"`
	NormalizedValue string  `bson:"normalizedValue"`
}

type AuctionEndedEvent struct {
	AuctionId            int64   `bson:"auctionId"`
	Winner               Address `bson:"winner,omitempty"`
	FinalNormalizedValue string  `bson:"finalNormalizedValue,omitempty"`
}

type InstanceCreatedEvent struct {
	InstanceRef InstanceRef `bson:"instanceRef"`
	Creator     Address     `bson:"creator"`
}

type BeaconUpgradedEvent struct {
	NewLogicRef LogicRef `bson:"newLogicRef"`
}

type EventRepo interface {
	Insert(c ctx.Ctx, event *Event) error
	Search(c ctx.Ctx, instanceRef InstanceRef, offset, limit int) ([]*Event, error)
}
