package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	mockDomain "github.com/bidhaus/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockOperators *mockDomain.OperatorRepo
	subject       *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockOperators = &mockDomain.OperatorRepo{}
	t.subject = &impl{
		operators: t.mockOperators,
		admins:    []domain.Address{"0xadmin"},
	}
}

func (t *testsuite) TestAdminIsOperator() {
	ok, err := t.subject.IsOperator(mockCtx, "0xAdmin")
	t.NoError(err)
	t.True(ok)
}

func (t *testsuite) TestGrantedAddressIsOperator() {
	t.mockOperators.On("FindOne", mockCtx, domain.Address("0xope")).Return(&domain.Operator{
		Address: "0xope",
	}, nil)

	ok, err := t.subject.IsOperator(mockCtx, "0xope")
	t.NoError(err)
	t.True(ok)
}

func (t *testsuite) TestStrangerIsNotOperator() {
	t.mockOperators.On("FindOne", mockCtx, domain.Address("0xeee")).Return(nil, domain.ErrNotFound)

	ok, err := t.subject.IsOperator(mockCtx, "0xeee")
	t.NoError(err)
	t.False(ok)
}

func (t *testsuite) TestAddRequiresOperator() {
	t.mockOperators.On("FindOne", mockCtx, domain.Address("0xeee")).Return(nil, domain.ErrNotFound)

	err := t.subject.Add(mockCtx, "0xeee", "0xnew")
	t.Equal(domain.ErrUnauthorized, err)
	t.mockOperators.AssertNotCalled(t.T(), "Insert")
}

func (t *testsuite) TestAddByAdmin() {
	t.mockOperators.On("Insert", mockCtx, mock.MatchedBy(func(o *domain.Operator) bool {
		return o.Address == "0xnew" && o.GrantedBy == "0xadmin"
	})).Return(nil)

	t.NoError(t.subject.Add(mockCtx, "0xadmin", "0xNew"))
	t.mockOperators.AssertExpectations(t.T())
}
