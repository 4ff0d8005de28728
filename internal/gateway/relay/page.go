package relay

import (
	"encoding/json"
	"fmt"

	"shadow-events-cli/internal/gateway"
)

const checkoutScriptURL = "https://checkout.razorpay.com/v1/checkout.js"

const pageTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Shadow Events Checkout</title></head>
<body>
<p id="status">Opening secure checkout…</p>
<script src="%s" onerror="document.getElementById('status').textContent='Checkout script failed to load.'"></script>
<script>
var options = %s;
options.handler = function (response) {
  fetch('/callback/payment', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(response)
  }).then(function () {
    document.getElementById('status').textContent = 'Payment received. You can close this tab.';
  });
};
options.modal = {
  ondismiss: function () {
    fetch('/callback/dismiss', {method: 'POST'}).then(function () {
      document.getElementById('status').textContent = 'Checkout dismissed. You can close this tab.';
    });
  }
};
if (window.Razorpay) {
  new window.Razorpay(options).open();
}
</script>
</body>
</html>`

func renderPage(checkout gateway.Checkout) string {
	options, _ := json.Marshal(map[string]any{
		"key":         checkout.Key,
		"amount":      checkout.Amount,
		"currency":    checkout.Currency,
		"name":        checkout.Name,
		"description": checkout.Description,
		"order_id":    checkout.OrderID,
		"prefill": map[string]string{
			"name":  checkout.Prefill.Name,
			"email": checkout.Prefill.Email,
		},
		"theme": map[string]string{
			"color": checkout.ThemeColor,
		},
	})
	return fmt.Sprintf(pageTemplate, checkoutScriptURL, options)
}
