package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/lac-hong-legacy/guestbook_api/model"
	"github.com/lac-hong-legacy/guestbook_api/shared"
)

type SubmitEntryRequest struct {
	Name     string `json:"name" example:"Tony Stark"`
	Message  string `json:"message" example:"Great site!"`
	ClientID string `json:"client_id,omitempty" validate:"omitempty,max=256,client_identifier" example:"f3b1c2d4"`
}

// Validate only checks the transport fields. Name and message rules live in
// ValidateGuestbookInput because they run after the rate limiter.
func (r SubmitEntryRequest) Validate() error {
	return GetValidator().Struct(r)
}

type clientIdentifier struct {
	ClientID string `json:"client_id" validate:"required,max=256,client_identifier"`
}

// ValidateClientIdentifier applies the client_id rules to an identifier taken
// from the header, query string or client IP.
func ValidateClientIdentifier(identifier string) error {
	return GetValidator().Struct(clientIdentifier{ClientID: identifier})
}

type SubmitEntryResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id" example:"01929f3e-7c1a-7b6e-9d2f-3a4b5c6d7e8f"`
}

type GuestbookEntryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type GuestbookStatsResponse struct {
	Entries            int64 `json:"entries"`
	// TrackedIdentifiers is omitted when the limiter keeps its windows outside
	// the process (redis).
	TrackedIdentifiers *int  `json:"tracked_identifiers,omitempty"`
}

func NewGuestbookEntryResponse(entry model.GuestbookEntry) GuestbookEntryResponse {
	return GuestbookEntryResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		Message:   entry.Message,
		Timestamp: entry.Timestamp,
	}
}

// ValidateGuestbookInput checks the raw (unsanitized) fields in a fixed order
// and reports the first failure. Lengths count characters, not bytes.
func ValidateGuestbookInput(name, message string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError(shared.KindMissingName, "name", "Name is required")
	}
	if utf8.RuneCountInString(name) > shared.MaxNameLength {
		return shared.NewValidationError(shared.KindNameTooLong, "name", "Name must be at most 100 characters")
	}
	if strings.TrimSpace(message) == "" {
		return shared.NewValidationError(shared.KindMissingMessage, "message", "Message is required")
	}
	if utf8.RuneCountInString(message) > shared.MaxMessageLength {
		return shared.NewValidationError(shared.KindMessageTooLong, "message", "Message must be at most 500 characters")
	}
	return nil
}
