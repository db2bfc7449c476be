package reconcile

import "errors"

// Guard errors. ErrForbidden is user-recoverable and surfaced directly; the
// unknown-* errors indicate referential integrity problems that a correctly
// behaving caller never triggers.
var (
	ErrForbidden     = errors.New("only the creditor may confirm a settlement")
	ErrUnknownEvent  = errors.New("event not found")
	ErrUnknownDebtor = errors.New("debtor is not a member of the event")
	ErrUnknownMember = errors.New("user is not a member of the event")
)

// AuthorizeSettlement validates that a new settlement record may legally be
// appended to an event's settlement log:
//
//   - the requester must be the creditor (a settlement is a receipt, and only
//     the party owed money may confirm it)
//   - both debtor and creditor must be event members
//
// It deliberately does not check that the amount is within the currently
// outstanding net debt: a creditor can record a larger settlement and flip
// the net direction. Closing that gap is an open question, not a feature.
func AuthorizeSettlement(requesterID string, rec Settlement, members []Member) error {
	if len(members) == 0 {
		return ErrUnknownEvent
	}
	if requesterID != rec.CreditorID {
		return ErrForbidden
	}
	if !isMember(rec.DebtorID, members) {
		return ErrUnknownDebtor
	}
	if !isMember(rec.CreditorID, members) {
		return ErrUnknownMember
	}
	return nil
}

func isMember(id string, members []Member) bool {
	for _, m := range members {
		if m.ID == id {
			return true
		}
	}
	return false
}
