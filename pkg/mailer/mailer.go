// Package mailer is a logged stub; real delivery is handled out-of-band.
package mailer

import "log"

type Mailer interface {
	SendInvite(email, link string) error
}

type LogMailer struct{}

func (LogMailer) SendInvite(email, link string) error {
	log.Printf("[mail] invite for %s: %s", email, link)
	return nil
}
