package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/renato0307/freshcart/internal/adapters/otp"
	"github.com/renato0307/freshcart/internal/domain"
)

// OTPCmd groups OTP commands
type OTPCmd struct {
	Check OTPCheckCmd `cmd:"check" help:"Evaluate whether an OTP issued at a given time is still valid" default:"1"`
}

// OTPCheckCmd evaluates the OTP validity window
type OTPCheckCmd struct {
	At       string `help:"Evaluation time in RFC3339 (default now)"`
	Code     string `help:"Stored OTP code" default:"123456"`
	IssuedAt string `help:"Issue time in RFC3339" required:""`
}

// Run executes the check command
func (o *OTPCheckCmd) Run(cli *CLI) error {
	issuedAt, err := time.Parse(time.RFC3339, o.IssuedAt)
	if err != nil {
		return fmt.Errorf("invalid --issued-at: %w", err)
	}

	at := time.Now()
	if o.At != "" {
		at, err = time.Parse(time.RFC3339, o.At)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
	}

	writeOTPCheck(os.Stdout, o.Code, issuedAt, at)
	return nil
}

func writeOTPCheck(w io.Writer, code string, issuedAt, at time.Time) {
	age := at.Sub(issuedAt)
	if !domain.OTPValidAt(code, &issuedAt, at) {
		fmt.Fprintf(w, "expired (issued %s ago, valid for %s)\n", age.Round(time.Second), domain.OTPValidity)
		return
	}

	fmt.Fprintf(w, "valid (%s left)\n", (domain.OTPValidity - age).Round(time.Second))
	if code == otp.DemoCode {
		fmt.Fprintln(w, "code matches the demo gateway")
	}
}
