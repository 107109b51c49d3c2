package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"
	"github.com/JesusGGUNCC/Student-Made/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type OrdOrderRepoMock struct{ mock.Mock }

func (m *OrdOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrdOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrdOrderRepoMock) ListByUsername(ctx context.Context, username string) ([]model.Order, error) {
	args := m.Called(ctx, username)
	list, _ := args.Get(0).([]model.Order)
	return list, args.Error(1)
}

func (m *OrdOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrdOrderDetailRepoMock struct{ mock.Mock }

func (m *OrdOrderDetailRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderDetail) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrdOrderDetailRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	list, _ := args.Get(0).([]model.OrderDetail)
	return list, args.Error(1)
}

type OrdProductRepoMock struct{ mock.Mock }

func (m *OrdProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *OrdProductRepoMock) ListByVendorID(ctx context.Context, vendorID int64) ([]model.Product, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdProductRepoMock) CreateBulk(ctx context.Context, ps []model.Product) ([]int64, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in OrderUsecase tests")
}

func (m *OrdProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in OrderUsecase tests")
}

type OrdInventoryRepoMock struct{ mock.Mock }

func (m *OrdInventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	panic("not used in OrderUsecase tests")
}

func (m *OrdInventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *OrdInventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *OrdInventoryRepoMock) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error {
	panic("not used in OrderUsecase tests")
}

type OrdPaymentRepoMock struct{ mock.Mock }

func (m *OrdPaymentRepoMock) FindByID(ctx context.Context, paymentID int64) (model.Payment, error) {
	args := m.Called(ctx, paymentID)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *OrdPaymentRepoMock) ListByUsername(ctx context.Context, username string) ([]model.Payment, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdPaymentRepoMock) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdPaymentRepoMock) Delete(ctx context.Context, paymentID int64) error {
	panic("not used in OrderUsecase tests")
}

// TxReposをまとめて返すだけ
type txReposStub struct {
	orders    *OrdOrderRepoMock
	details   *OrdOrderDetailRepoMock
	products  *OrdProductRepoMock
	inventory *OrdInventoryRepoMock
	payments  *OrdPaymentRepoMock
}

func (s *txReposStub) Orders() repo.OrderRepository             { return s.orders }
func (s *txReposStub) OrderDetails() repo.OrderDetailRepository { return s.details }
func (s *txReposStub) Products() repo.ProductRepository         { return s.products }
func (s *txReposStub) Inventory() repo.InventoryRepository      { return s.inventory }
func (s *txReposStub) Payments() repo.PaymentRepository         { return s.payments }

// fnのエラーをそのまま返す（rollbackはDB側の仕事なのでここでは見ない）
type txManagerStub struct {
	repos   *txReposStub
	entered int
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	t.entered++
	return fn(t.repos)
}

func newTxStub() (*txManagerStub, *txReposStub) {
	repos := &txReposStub{
		orders:    new(OrdOrderRepoMock),
		details:   new(OrdOrderDetailRepoMock),
		products:  new(OrdProductRepoMock),
		inventory: new(OrdInventoryRepoMock),
		payments:  new(OrdPaymentRepoMock),
	}
	return &txManagerStub{repos: repos}, repos
}

// =====================
// helper
// =====================

func assertHTTPError(t *testing.T, err error, wantStatus int, wantContains string) {
	t.Helper()

	assert.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("want HTTPError, got %v", err)
	}
	assert.Equal(t, wantStatus, he.Status)
	if wantContains != "" {
		assert.True(t, strings.Contains(he.Message, wantContains), "message %q should contain %q", he.Message, wantContains)
	}
}

func validCreateInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Username:       "alice",
		FirstName:      "Alice",
		LastName:       "Smith",
		Address1:       "123 Main St",
		Country:        "US",
		State:          "NC",
		City:           "Charlotte",
		ZipCode:        "28223",
		PhoneNumber:    "555-0100",
		SubtotalAmount: decimal.NewFromInt(30),
		SalesTaxAmount: decimal.NewFromInt(2),
		ShippingFee:    decimal.NewFromInt(5),
		TotalAmount:    decimal.NewFromInt(37),
		PaymentID:      7,
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	}
}

// =====================
// CreateOrder
// =====================

func TestOrderUsecase_CreateOrder_MissingFields(t *testing.T) {
	tx, _ := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	in := validCreateInput()
	in.FirstName = ""

	_, err := uc.CreateOrder(context.Background(), in)
	assertHTTPError(t, err, 400, "missing required fields")

	// 入力不備ならtxにすら入らない
	assert.Equal(t, 0, tx.entered)
}

func TestOrderUsecase_CreateOrder_EmptyItems(t *testing.T) {
	tx, _ := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	in := validCreateInput()
	in.Items = nil

	_, err := uc.CreateOrder(context.Background(), in)
	assertHTTPError(t, err, 400, "missing required fields")
}

func TestOrderUsecase_CreateOrder_NegativeAmount(t *testing.T) {
	tx, _ := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	in := validCreateInput()
	in.TotalAmount = decimal.NewFromInt(-1)

	_, err := uc.CreateOrder(context.Background(), in)
	assertHTTPError(t, err, 400, "amounts must be >= 0")
}

func TestOrderUsecase_CreateOrder_ZeroQuantity(t *testing.T) {
	tx, _ := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	in := validCreateInput()
	in.Items[0].Quantity = 0

	_, err := uc.CreateOrder(context.Background(), in)
	assertHTTPError(t, err, 400, "quantity")
}

func TestOrderUsecase_CreateOrder_InvalidPayment(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{}, repo.ErrNotFound)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assertHTTPError(t, err, 400, "invalid payment id")

	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_ForeignPayment(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	//他人の支払い方法は使えない
	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{ID: 7, Username: "mallory"}, nil)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assertHTTPError(t, err, 400, "payment does not belong to the user")

	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_ProductNotFound(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{ID: 7, Username: "alice"}, nil)
	r.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assertHTTPError(t, err, 400, "product 1 not found")

	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_InactiveProduct(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{ID: 7, Username: "alice"}, nil)
	r.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Mug", Active: false, Stock: 10}, nil)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assertHTTPError(t, err, 400, "no longer available")
}

func TestOrderUsecase_CreateOrder_InsufficientStockPrecheck(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{ID: 7, Username: "alice"}, nil)
	r.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Mug", Active: true, Stock: 1}, nil)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assertHTTPError(t, err, 409, "insufficient stock")

	//混在カートでも注文・明細・減算は一切走らない
	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.details.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
	r.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_Success(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{ID: 7, Username: "alice"}, nil)
	r.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Mug", Active: true, Stock: 5}, nil)
	r.products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Name: "Tee", Active: true, Stock: 5}, nil)

	r.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Status == model.OrderStatusPending && o.Username == "alice"
	})).Return(int64(42), nil)
	r.details.On("CreateBulk", mock.Anything, int64(42), mock.Anything).Return(nil)
	r.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	r.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(1)).Return(true, nil)

	orderID, err := uc.CreateOrder(context.Background(), validCreateInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	r.orders.AssertExpectations(t)
	r.details.AssertExpectations(t)
	r.inventory.AssertExpectations(t)
}

// 事前チェック通過後に他の注文が在庫を取ったケース。
// 条件付きUPDATEが0行になり、注文全体が失敗する
func TestOrderUsecase_CreateOrder_DebitRaceFailsOrder(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.payments.On("FindByID", mock.Anything, int64(7)).Return(model.Payment{ID: 7, Username: "alice"}, nil)
	r.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Mug", Active: true, Stock: 5}, nil)
	r.products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Name: "Tee", Active: true, Stock: 5}, nil)

	r.orders.On("Create", mock.Anything, mock.Anything).Return(int64(42), nil)
	r.details.On("CreateBulk", mock.Anything, int64(42), mock.Anything).Return(nil)
	r.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	r.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(1)).Return(false, nil)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assertHTTPError(t, err, 409, "insufficient stock")
}

// =====================
// CancelOrder
// =====================

func TestOrderUsecase_CancelOrder_NotFound(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	err := uc.CancelOrder(context.Background(), 9, "alice")
	assertHTTPError(t, err, 404, "not found")
}

func TestOrderUsecase_CancelOrder_Forbidden(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice", Status: model.OrderStatusPending}, nil)

	err := uc.CancelOrder(context.Background(), 9, "mallory")
	assertHTTPError(t, err, 403, "forbidden")

	r.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_CancelOrder_NonPending(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice", Status: model.OrderStatusShipped}, nil)

	err := uc.CancelOrder(context.Background(), 9, "alice")
	assertHTTPError(t, err, 409, "cannot cancel order with status Shipped")
}

// 二重キャンセルは同一Tx内のステータス確認で弾かれる＝在庫は一度しか戻らない
func TestOrderUsecase_CancelOrder_AlreadyCancelled(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice", Status: model.OrderStatusCancelled}, nil)

	err := uc.CancelOrder(context.Background(), 9, "alice")
	assertHTTPError(t, err, 409, "cannot cancel")

	r.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_CancelOrder_RestoresStock(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice", Status: model.OrderStatusPending}, nil)
	r.details.On("ListByOrderID", mock.Anything, int64(9)).Return([]model.OrderDetail{
		{OrderID: 9, ProductID: 1, Quantity: 2},
		{OrderID: 9, ProductID: 2, Quantity: 1},
	}, nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(1), int64(2)).Return(nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(2), int64(1)).Return(nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(9), model.OrderStatusCancelled).Return(nil)

	err := uc.CancelOrder(context.Background(), 9, "alice")
	assert.NoError(t, err)

	r.inventory.AssertExpectations(t)
	r.orders.AssertExpectations(t)
}

// 消えた商品の分は戻し先がないだけでキャンセル自体は成功する
func TestOrderUsecase_CancelOrder_MissingProductSkipped(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice", Status: model.OrderStatusPending}, nil)
	r.details.On("ListByOrderID", mock.Anything, int64(9)).Return([]model.OrderDetail{
		{OrderID: 9, ProductID: 1, Quantity: 2},
		{OrderID: 9, ProductID: 404, Quantity: 1},
	}, nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(1), int64(2)).Return(nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(404), int64(1)).Return(repo.ErrNotFound)
	r.orders.On("UpdateStatus", mock.Anything, int64(9), model.OrderStatusCancelled).Return(nil)

	err := uc.CancelOrder(context.Background(), 9, "alice")
	assert.NoError(t, err)
}

// =====================
// UpdateStatus
// =====================

func TestOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	tx, _ := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	err := uc.UpdateStatus(context.Background(), 9, "Teleported")
	assertHTTPError(t, err, 400, "invalid status")
	assert.Equal(t, 0, tx.entered)
}

func TestOrderUsecase_UpdateStatus_SameStatusNoop(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Status: model.OrderStatusShipped}, nil)

	err := uc.UpdateStatus(context.Background(), 9, "Shipped")
	assert.NoError(t, err)

	r.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_UpdateStatus_BackwardsRejected(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Status: model.OrderStatusShipped}, nil)

	err := uc.UpdateStatus(context.Background(), 9, "Processing")
	assertHTTPError(t, err, 409, "cannot change order status from Shipped to Processing")
}

func TestOrderUsecase_UpdateStatus_TerminalRejected(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Status: model.OrderStatusDelivered}, nil)

	err := uc.UpdateStatus(context.Background(), 9, "Cancelled")
	assertHTTPError(t, err, 409, "cannot change order status")

	r.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_UpdateStatus_Forward(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Status: model.OrderStatusProcessing}, nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(9), model.OrderStatusShipped).Return(nil)

	err := uc.UpdateStatus(context.Background(), 9, "Shipped")
	assert.NoError(t, err)

	//前方遷移では在庫は動かない
	r.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
	r.orders.AssertExpectations(t)
}

// 管理側はPending以外からでもキャンセルでき、在庫が戻る
func TestOrderUsecase_UpdateStatus_CancelFromProcessingRestoresStock(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Status: model.OrderStatusProcessing}, nil)
	r.details.On("ListByOrderID", mock.Anything, int64(9)).Return([]model.OrderDetail{
		{OrderID: 9, ProductID: 1, Quantity: 3},
	}, nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(1), int64(3)).Return(nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(9), model.OrderStatusCancelled).Return(nil)

	err := uc.UpdateStatus(context.Background(), 9, "Cancelled")
	assert.NoError(t, err)

	r.inventory.AssertExpectations(t)
	r.orders.AssertExpectations(t)
}

// =====================
// GetOrder / ListOrders
// =====================

func TestOrderUsecase_GetOrder_Forbidden(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice"}, nil)

	_, err := uc.GetOrder(context.Background(), 9, "mallory")
	assertHTTPError(t, err, 403, "forbidden")
}

func TestOrderUsecase_GetOrder_MissingProductRendersUnknown(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, Username: "alice", Status: model.OrderStatusPending}, nil)
	r.details.On("ListByOrderID", mock.Anything, int64(9)).Return([]model.OrderDetail{
		{OrderID: 9, ProductID: 404, Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
	}, nil)
	r.products.On("FindByID", mock.Anything, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetOrder(context.Background(), 9, "alice")
	assert.NoError(t, err)
	assert.Len(t, out.Products, 1)
	assert.Equal(t, "Unknown Product", out.Products[0].ProductName)
	assert.True(t, out.Products[0].Subtotal.Equal(decimal.NewFromInt(20)))
}

func TestOrderUsecase_ListOrders_Summaries(t *testing.T) {
	tx, r := newTxStub()
	uc := usecase.NewOrderUsecase(tx)

	r.orders.On("ListByUsername", mock.Anything, "alice").Return([]model.Order{
		{ID: 2, Username: "alice", Status: model.OrderStatusPending},
		{ID: 1, Username: "alice", Status: model.OrderStatusDelivered},
	}, nil)
	r.details.On("ListByOrderID", mock.Anything, int64(2)).Return([]model.OrderDetail{{}, {}}, nil)
	r.details.On("ListByOrderID", mock.Anything, int64(1)).Return([]model.OrderDetail{{}}, nil)

	out, err := uc.ListOrders(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ProductCount)
	assert.Equal(t, 1, out[1].ProductCount)
}
