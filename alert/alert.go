package alert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender is the phone alert channel. A failed send is reported to the caller
// but must never invalidate the verdict that triggered it.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// ErrNotConfigured is returned when the Twilio credentials are missing and
// the call is skipped.
var ErrNotConfigured = errors.New("twilio credentials not available, skipping call")

// TwilioSender places a voice call through Twilio when a suspicious boat is
// detected.
type TwilioSender struct {
	client    *twilio.RestClient
	from      string
	recipient string
}

// NewTwilioSenderFromEnv builds a sender from TWILIO_ACCOUNT_SID,
// TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER and ALERT_RECIPIENT_NUMBER. With any
// of them missing the sender still constructs, but Send reports
// ErrNotConfigured instead of calling out.
func NewTwilioSenderFromEnv() *TwilioSender {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	recipient := os.Getenv("ALERT_RECIPIENT_NUMBER")

	if accountSID == "" || authToken == "" || from == "" || recipient == "" {
		log.Println("Warning: Twilio environment variables missing, phone alerts disabled")
		return &TwilioSender{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from, recipient: recipient}
}

// Send places the alert call. The message is read out by the answering
// machine via TwiML.
func (s *TwilioSender) Send(_ context.Context, message string) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	twiml := fmt.Sprintf(`
	<Response>
		<Say>Alert! %s Please check the monitoring system immediately.</Say>
		<Pause length="1"/>
		<Say>This is an automated call from the boat border monitoring system.</Say>
	</Response>
	`, message)

	params := &twilioApi.CreateCallParams{}
	params.SetTo(s.recipient)
	params.SetFrom(s.from)
	params.SetTwiml(twiml)

	call, err := s.client.Api.CreateCall(params)
	if err != nil {
		return fmt.Errorf("failed to make Twilio call: %w", err)
	}

	if call.Sid != nil {
		log.Printf("Alert call initiated. Call SID: %s", *call.Sid)
	}
	return nil
}
