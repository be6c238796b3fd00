//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/zipos/zipos-be/internal/adapters/db"
	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/test/helpers"
)

const testOrg = "e2e-org"

// singleTenant satisfies ports.TenantDatabases with one fixed database, which
// is all these tests need.
type singleTenant struct {
	db ports.Database
}

func (s *singleTenant) Database(_ context.Context, _ string) (ports.Database, error) {
	return s.db, nil
}

func (s *singleTenant) CloseAll() {}

type CheckoutWorkflowSuite struct {
	suite.Suite
	testDB        *helpers.TestDB
	tenants       ports.TenantDatabases
	salesRepo     ports.SalesRepository
	inventoryRepo ports.InventoryRepository
	inventory     *services.InventoryService
	sales         *services.SalesService
}

func (s *CheckoutWorkflowSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.tenants = &singleTenant{db: s.testDB.Database}

	log := helpers.TestLogger()
	s.inventoryRepo = db.NewInventoryRepository(log)
	s.salesRepo = db.NewSalesRepository(log)

	s.inventory = services.NewInventoryService(s.tenants, s.inventoryRepo, log)
	s.sales = services.NewSalesService(s.tenants, s.salesRepo, s.inventoryRepo,
		services.NewFlatRateTaxCalculator(decimal.NewFromFloat(0.10)),
		services.NewPercentagePromotionEngine(nil, nil),
		nil, false, log)
}

func (s *CheckoutWorkflowSuite) SetupTest() {
	helpers.TruncateTenantTables(s.T(), s.testDB.Database)
}

func (s *CheckoutWorkflowSuite) TestCheckoutDeductsStockAndSnapshotsLines() {
	ctx := context.Background()

	// Receive stock so the sale has something to deduct.
	_, err := s.inventory.Receive(ctx, testOrg, ports.ReceiveStockRequest{
		ProductID:   "SKU-001",
		BranchID:    "branch-main",
		Quantity:    decimal.NewFromInt(50),
		UnitCost:    decimal.NewFromFloat(4.00),
		PerformedBy: "e2e",
	})
	s.Require().NoError(err)

	cart, err := s.sales.CreateCart(ctx, testOrg, "branch-main", "cashier-1")
	s.Require().NoError(err)

	cart, err = s.sales.AddItem(ctx, testOrg, cart.ID, ports.AddCartItemRequest{
		ProductID: "SKU-001",
		Name:      "Widget",
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.NewFromFloat(10.00),
	})
	s.Require().NoError(err)
	helpers.AssertDecimalEqual(s.T(), decimal.NewFromFloat(30.00), cart.TotalAmount)

	// 30.00 + 10% tax.
	sale, err := s.sales.Checkout(ctx, testOrg, ports.CheckoutRequest{
		CartID: cart.ID,
		UserID: "cashier-1",
		Payments: []ports.PaymentRequest{
			{Method: "cash", Amount: decimal.NewFromFloat(33.00)},
		},
	})
	s.Require().NoError(err)
	helpers.AssertDecimalEqual(s.T(), decimal.NewFromFloat(33.00), sale.TotalAmount)

	item, err := s.inventory.GetItem(ctx, testOrg, "SKU-001", "branch-main")
	s.Require().NoError(err)
	helpers.AssertDecimalEqual(s.T(), decimal.NewFromInt(47), item.CurrentStock)

	// The ledger balance reconciles with the movement audit trail.
	total, err := s.inventoryRepo.SumMovements(ctx, s.testDB.Database, "SKU-001", "branch-main")
	s.Require().NoError(err)
	helpers.AssertDecimalEqual(s.T(), item.CurrentStock, total)

	// The cart is consumed by checkout.
	_, _, err = s.sales.GetCart(ctx, testOrg, cart.ID)
	s.Error(err)

	receipt, err := s.sales.GetReceipt(ctx, testOrg, sale.ID)
	s.Require().NoError(err)
	s.Len(receipt.Lines, 1)
	s.Len(receipt.Payments, 1)
}

func (s *CheckoutWorkflowSuite) TestRefundApprovalRestocks() {
	ctx := context.Background()

	_, err := s.inventory.Receive(ctx, testOrg, ports.ReceiveStockRequest{
		ProductID:   "SKU-002",
		BranchID:    "branch-main",
		Quantity:    decimal.NewFromInt(10),
		UnitCost:    decimal.NewFromFloat(2.50),
		PerformedBy: "e2e",
	})
	s.Require().NoError(err)

	cart, err := s.sales.CreateCart(ctx, testOrg, "branch-main", "cashier-1")
	s.Require().NoError(err)
	_, err = s.sales.AddItem(ctx, testOrg, cart.ID, ports.AddCartItemRequest{
		ProductID: "SKU-002",
		Name:      "Gadget",
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.NewFromFloat(5.00),
	})
	s.Require().NoError(err)

	sale, err := s.sales.Checkout(ctx, testOrg, ports.CheckoutRequest{
		CartID: cart.ID,
		UserID: "cashier-1",
		Payments: []ports.PaymentRequest{
			{Method: "card", Amount: decimal.NewFromFloat(11.00)},
		},
	})
	s.Require().NoError(err)

	saleItems, err := s.salesRepo.ListSaleItems(ctx, s.testDB.Database, sale.ID)
	s.Require().NoError(err)
	s.Require().Len(saleItems, 1)

	refund, err := s.sales.RequestRefund(ctx, testOrg, sale.ID, []ports.RefundLineRequest{
		{SaleItemID: saleItems[0].ID, Quantity: decimal.NewFromInt(1), Restock: true},
	}, "damaged", "manager-1")
	s.Require().NoError(err)

	approved, err := s.sales.ApproveRefund(ctx, testOrg, refund.ID, "manager-1")
	s.Require().NoError(err)
	s.True(approved)

	// 10 received − 2 sold + 1 restocked.
	item, err := s.inventory.GetItem(ctx, testOrg, "SKU-002", "branch-main")
	s.Require().NoError(err)
	helpers.AssertDecimalEqual(s.T(), decimal.NewFromInt(9), item.CurrentStock)

	// Receipt, sale and restock movements sum back to the quantity on hand.
	total, err := s.inventoryRepo.SumMovements(ctx, s.testDB.Database, "SKU-002", "branch-main")
	s.Require().NoError(err)
	helpers.AssertDecimalEqual(s.T(), item.CurrentStock, total)

	// A second approval attempt is a no-op.
	again, err := s.sales.ApproveRefund(ctx, testOrg, refund.ID, "manager-1")
	s.Require().NoError(err)
	s.False(again)
}

func TestCheckoutWorkflowSuite(t *testing.T) {
	suite.Run(t, new(CheckoutWorkflowSuite))
}
