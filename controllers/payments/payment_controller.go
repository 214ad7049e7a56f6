package paymentsController

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/payments"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
	"github.com/pixeldesignindia/organic-api/utils"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	payments *services.PaymentService
	orders   *services.OrderService
	cart     *services.CartService
	razorpay payments.Razorpay
	payu     payments.PayU
	phonepe  payments.PhonePe
	validate *validator.Validate
}

func NewController(
	paymentsSvc *services.PaymentService,
	orders *services.OrderService,
	cart *services.CartService,
	razorpay payments.Razorpay,
	payu payments.PayU,
	phonepe payments.PhonePe,
	validate *validator.Validate,
) *Controller {
	return &Controller{
		payments: paymentsSvc,
		orders:   orders,
		cart:     cart,
		razorpay: razorpay,
		payu:     payu,
		phonepe:  phonepe,
		validate: validate,
	}
}

func (ctl *Controller) caller(c *fiber.Ctx) (primitive.ObjectID, error) {
	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return primitive.NilObjectID, responses.BadRequest(c, "Invalid user ID format")
	}
	return userID, nil
}

// RazorpayCreateOrder registers a gateway order and opens the payment
// record that later callbacks reconcile against.
func (ctl *Controller) RazorpayCreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}

	var req struct {
		OrderID string  `json:"orderId" validate:"required"`
		Amount  float64 `json:"amount" validate:"required,gt=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}
	if _, err := ctl.orders.FindByID(ctx, orderID, userID); err != nil {
		return responses.Fail(c, err)
	}

	gatewayOrder, err := ctl.razorpay.CreateOrder(req.Amount, "receipt_"+req.OrderID)
	if err != nil {
		return responses.Fail(c, err)
	}

	payment, err := ctl.payments.Create(ctx, userID, orderID, "", models.PaymentMethodRazorpay, req.Amount, "INR")
	if err != nil {
		return responses.Fail(c, err)
	}

	return responses.Ok(c, "Razorpay order created successfully", &fiber.Map{
		"transactionId": payment.TransactionID,
		"razorpayId":    gatewayOrder["id"],
		"amount":        gatewayOrder["amount"],
		"currency":      gatewayOrder["currency"],
		"key_id":        ctl.razorpay.KeyID,
	})
}

// RazorpayVerifySignature checks the gateway signature, marks the order
// paid and clears the buyer's cart.
func (ctl *Controller) RazorpayVerifySignature(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}

	var req struct {
		OrderID       string `json:"orderId" validate:"required"`
		TransactionID string `json:"transactionId" validate:"required"`
		RazorpayID    string `json:"razorpayId" validate:"required"`
		PaymentID     string `json:"paymentId" validate:"required"`
		Signature     string `json:"signature" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.razorpay.VerifySignature(req.RazorpayID, req.PaymentID, req.Signature); err != nil {
		return responses.Fail(c, err)
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}
	if err := ctl.orders.MarkPaid(ctx, orderID, userID, req.PaymentID); err != nil {
		return responses.Fail(c, err)
	}
	if err := ctl.payments.UpdateStatus(ctx, req.TransactionID, req.PaymentID, models.PaymentStatusSucceeded); err != nil {
		return responses.Fail(c, err)
	}
	// Best effort: the payment already succeeded.
	_ = ctl.cart.Clear(ctx, userID)

	return responses.Ok(c, "Payment verified successfully", &fiber.Map{
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

// PayUHash returns the request hash the frontend posts to the gateway and
// opens the payment record under the caller's txnid, so the inbound
// callback has something to reconcile against.
func (ctl *Controller) PayUHash(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}

	var req struct {
		payments.PayURequest
		OrderID string `json:"orderId" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}
	if _, err := ctl.orders.FindByID(ctx, orderID, userID); err != nil {
		return responses.Fail(c, err)
	}
	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount <= 0 {
		return responses.BadRequest(c, "Invalid amount")
	}

	hash, err := ctl.payu.RequestHash(req.PayURequest)
	if err != nil {
		return responses.Fail(c, err)
	}
	if _, err := ctl.payments.Create(ctx, userID, orderID, req.TxnID, "PayU", amount, "INR"); err != nil {
		return responses.Fail(c, err)
	}

	return responses.Ok(c, "Hash generated successfully", &fiber.Map{
		"hash": hash,
		"key":  ctl.payu.Key,
	})
}

// PayUCallback is the unauthenticated inbound notification from the
// gateway; the hash check inside the service is its authentication.
func (ctl *Controller) PayUCallback(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var cb services.PayUCallback
	if err := c.BodyParser(&cb); err != nil {
		return responses.BadRequest(c, "Invalid callback body")
	}
	if err := ctl.validate.Struct(cb); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.payments.HandlePayUCallback(ctx, cb); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Callback processed successfully", nil)
}

// PhonePePay starts a checkout on the PhonePe-style gateway.
func (ctl *Controller) PhonePePay(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}

	var req struct {
		OrderID     string  `json:"orderId" validate:"required"`
		Amount      float64 `json:"amount" validate:"required,gt=0"`
		RedirectURL string  `json:"redirectUrl"`
		CallbackURL string  `json:"callbackUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}

	// The record is opened before the gateway call so a gateway success
	// always has a matching transaction id to land on.
	txnID := utils.TransactionID()
	if _, err := ctl.payments.Create(ctx, userID, orderID, txnID, "PhonePe", req.Amount, "INR"); err != nil {
		return responses.Fail(c, err)
	}
	result, err := ctl.phonepe.Pay(payments.PhonePePayRequest{
		MerchantTransactionID: txnID,
		UserID:                userID.Hex(),
		Amount:                req.Amount,
		RedirectURL:           req.RedirectURL,
		CallbackURL:           req.CallbackURL,
	})
	if err != nil {
		return responses.Fail(c, err)
	}

	return responses.Ok(c, "Payment initiated successfully", &fiber.Map{
		"transactionId": txnID,
		"gateway":       result,
	})
}

// PhonePeStatus checks a transaction against the gateway.
func (ctl *Controller) PhonePeStatus(c *fiber.Ctx) error {
	txnID := c.Params("txnid")
	if txnID == "" {
		return responses.BadRequest(c, "Transaction ID is required")
	}
	result, err := ctl.phonepe.Status(txnID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Status fetched successfully", &fiber.Map{"gateway": result})
}
