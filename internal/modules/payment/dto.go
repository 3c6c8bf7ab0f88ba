package payment

type InitiatePaymentResponse struct {
	Reference   string `json:"reference"`
	AmountKobo  int64  `json:"amount_kobo"`
	CheckoutURL string `json:"checkout_url"`
}

// paystackInitRequest is the body Paystack's transaction/initialize expects.
// Amount is in kobo (NGN minor units).
type paystackInitRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}
