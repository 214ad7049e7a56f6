package routes

import (
	"github.com/gofiber/fiber/v2"

	paymentController "github.com/pixeldesignindia/organic-api/controllers/payments"
)

func PaymentRoutes(api fiber.Router, ctl *paymentController.Controller) {
	api.Post("/payment/razorpay/order", ctl.RazorpayCreateOrder)
	api.Post("/payment/razorpay/verify", ctl.RazorpayVerifySignature)

	api.Post("/payment/payu/hash", ctl.PayUHash)
	// Gateway-initiated callback, kept open in the auth middleware.
	api.Post("/payment/callback/payu", ctl.PayUCallback)

	api.Post("/payment/phonepe/pay", ctl.PhonePePay)
	api.Get("/payment/phonepe/status/:txnid", ctl.PhonePeStatus)
}
