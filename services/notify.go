package services

import (
	"fmt"
	"html"
	"log"

	"led-admin-api/config"
	"led-admin-api/models"
)

// NotifyNewInquiry mails the sales recipients about a fresh contact inquiry.
// Runs on its own goroutine; failures are logged and never surfaced to the
// public API caller.
func NotifyNewInquiry(inquiry models.Inquiry) {
	recipients := config.App.SMTP.NotifyTo
	if len(recipients) == 0 {
		return
	}

	go func() {
		subject := fmt.Sprintf("New inquiry #%d from %s", inquiry.ID, inquiry.Name)
		body := fmt.Sprintf(
			"<h3>New website inquiry</h3>"+
				"<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Company:</b> %s<br>"+
				"<b>Phone:</b> %s<br><b>Product interest:</b> %s</p><p>%s</p>",
			html.EscapeString(inquiry.Name),
			html.EscapeString(inquiry.Email),
			html.EscapeString(inquiry.Company),
			html.EscapeString(inquiry.Phone),
			html.EscapeString(inquiry.ProductInterest),
			html.EscapeString(inquiry.Message),
		)
		if err := config.SendMail(recipients, subject, body); err != nil {
			log.Printf("inquiry notification mail failed: %v", err)
		}
	}()
}

// NotifyNewQuote mails the sales recipients about a fresh quote request.
func NotifyNewQuote(quote models.QuoteRequest) {
	recipients := config.App.SMTP.NotifyTo
	if len(recipients) == 0 {
		return
	}

	go func() {
		subject := fmt.Sprintf("New quote request #%d from %s", quote.ID, quote.Name)
		body := fmt.Sprintf(
			"<h3>New quote request</h3>"+
				"<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Company:</b> %s<br>"+
				"<b>Product type:</b> %s<br><b>Display size:</b> %s<br>"+
				"<b>Quantity:</b> %d<br><b>Timeline:</b> %s<br><b>Budget:</b> %s</p><p>%s</p>",
			html.EscapeString(quote.Name),
			html.EscapeString(quote.Email),
			html.EscapeString(quote.Company),
			html.EscapeString(quote.ProductType),
			html.EscapeString(quote.DisplaySize),
			quote.Quantity,
			html.EscapeString(quote.Timeline),
			html.EscapeString(quote.Budget),
			html.EscapeString(quote.Requirements),
		)
		if err := config.SendMail(recipients, subject, body); err != nil {
			log.Printf("quote notification mail failed: %v", err)
		}
	}()
}
