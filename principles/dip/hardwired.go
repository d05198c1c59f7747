package dip

import (
	"context"
	"fmt"
)

// HardwiredOrderService is the before picture: the policy constructs its
// own mailer, so testing it means standing up a mail server and swapping
// delivery means rewriting the service.
type HardwiredOrderService struct {
	smtpAddr string
}

// NewHardwiredOrderService bakes the SMTP detail into the constructor.
func NewHardwiredOrderService() *HardwiredOrderService {
	return &HardwiredOrderService{smtpAddr: "mail.internal:25"}
}

// PlaceOrder cannot run without the network.
func (s *HardwiredOrderService) PlaceOrder(ctx context.Context, o Order) error {
	return fmt.Errorf("dial %s: no route to host", s.smtpAddr)
}
