package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	mockBeacon "github.com/bidhaus/goauction/domain/beacon/mocks"
	mockDomain "github.com/bidhaus/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()
)

// stubEngine only reports a version, the factory never invokes the
// state machine itself.
type stubEngine struct {
	auction.Engine
	version string
}

func (s *stubEngine) Version() string {
	return s.version
}

type testsuite struct {
	suite.Suite
	mockBeacons   *mockBeacon.Repo
	mockInstances *mockBeacon.InstanceRepo
	mockOperator  *mockDomain.OperatorUsecase
	mockEvents    *mockDomain.EventRepo
	subject       *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockBeacons = &mockBeacon.Repo{}
	t.mockInstances = &mockBeacon.InstanceRepo{}
	t.mockOperator = &mockDomain.OperatorUsecase{}
	t.mockEvents = &mockDomain.EventRepo{}
	t.subject = &impl{
		beacons:   t.mockBeacons,
		instances: t.mockInstances,
		operator:  t.mockOperator,
		events:    t.mockEvents,
		engines: map[domain.LogicRef]auction.Engine{
			"v1": &stubEngine{version: "V1.0"},
			"v2": &stubEngine{version: "V2.0"},
		},
		defaultLogic: "v1",
	}
}

func (t *testsuite) TestResolveBeforeFirstUpgrade() {
	t.mockBeacons.On("Current", mockCtx).Return(domain.LogicRef(""), domain.ErrNotFound)

	engine, err := t.subject.Resolve(mockCtx)
	t.NoError(err)
	t.Equal("V1.0", engine.Version())
}

func (t *testsuite) TestResolveUnknownLogic() {
	t.mockBeacons.On("Current", mockCtx).Return(domain.LogicRef("v9"), nil)

	_, err := t.subject.Resolve(mockCtx)
	t.Equal(domain.ErrUnknownLogic, err)
}

func (t *testsuite) TestUpgradeAllSwitchesEveryInstance() {
	operator := domain.Address("0xope")

	t.mockBeacons.On("Current", mockCtx).Return(domain.LogicRef("v1"), nil).Once()
	t.mockOperator.On("IsOperator", mockCtx, operator).Return(true, nil)
	t.mockBeacons.On("Upgrade", mockCtx, operator, domain.LogicRef("v2")).Return(nil)
	t.mockEvents.On("Insert", mockCtx, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Type == domain.EventBeaconUpgraded
	})).Return(nil)
	t.mockBeacons.On("Current", mockCtx).Return(domain.LogicRef("v2"), nil)

	before, err := t.subject.Resolve(mockCtx)
	t.NoError(err)
	t.Equal("V1.0", before.Version())

	t.NoError(t.subject.UpgradeAll(mockCtx, operator, "v2"))

	after, err := t.subject.Resolve(mockCtx)
	t.NoError(err)
	t.Equal("V2.0", after.Version())

	// one beacon write, no per-instance writes
	t.mockBeacons.AssertNumberOfCalls(t.T(), "Upgrade", 1)
	t.mockInstances.AssertNotCalled(t.T(), "Insert")
	t.mockEvents.AssertExpectations(t.T())
}

func (t *testsuite) TestUpgradeAllRequiresOperator() {
	caller := domain.Address("0xeee")

	t.mockOperator.On("IsOperator", mockCtx, caller).Return(false, nil)

	t.Equal(domain.ErrUnauthorized, t.subject.UpgradeAll(mockCtx, caller, "v2"))
	t.mockBeacons.AssertNotCalled(t.T(), "Upgrade")
}

func (t *testsuite) TestUpgradeAllUnknownLogic() {
	operator := domain.Address("0xope")

	t.mockOperator.On("IsOperator", mockCtx, operator).Return(true, nil)

	t.Equal(domain.ErrUnknownLogic, t.subject.UpgradeAll(mockCtx, operator, "v9"))
	t.mockBeacons.AssertNotCalled(t.T(), "Upgrade")
}

func (t *testsuite) TestCreateInstance() {
	creator := domain.Address("0xabc")

	t.mockInstances.On("Insert", mockCtx, mock.AnythingOfType("*beacon.Instance")).Return(nil)
	t.mockEvents.On("Insert", mockCtx, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Type == domain.EventInstanceCreated
	})).Return(nil)

	instance, err := t.subject.CreateInstance(mockCtx, creator)
	t.NoError(err)
	t.NotEmpty(instance.Ref)
	t.Equal(creator, instance.Creator)
	t.mockEvents.AssertExpectations(t.T())
}
