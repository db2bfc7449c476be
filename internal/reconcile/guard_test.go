package reconcile

import (
	"errors"
	"testing"
)

func TestAuthorizeSettlement(t *testing.T) {
	members := []Member{{ID: "A", Name: "alice"}, {ID: "B", Name: "bob"}}
	rec := Settlement{DebtorID: "B", CreditorID: "A", Amount: FromFloat(30)}

	tests := []struct {
		name      string
		requester string
		rec       Settlement
		members   []Member
		wantErr   error
	}{
		{
			name:      "creditor may confirm",
			requester: "A",
			rec:       rec,
			members:   members,
		},
		{
			name:      "debtor may not confirm",
			requester: "B",
			rec:       rec,
			members:   members,
			wantErr:   ErrForbidden,
		},
		{
			name:      "third party may not confirm",
			requester: "C",
			rec:       rec,
			members:   members,
			wantErr:   ErrForbidden,
		},
		{
			name:      "unresolvable event",
			requester: "A",
			rec:       rec,
			members:   nil,
			wantErr:   ErrUnknownEvent,
		},
		{
			name:      "debtor outside the roster",
			requester: "A",
			rec:       Settlement{DebtorID: "Z", CreditorID: "A", Amount: FromFloat(10)},
			members:   members,
			wantErr:   ErrUnknownDebtor,
		},
		{
			name:      "creditor outside the roster",
			requester: "Z",
			rec:       Settlement{DebtorID: "B", CreditorID: "Z", Amount: FromFloat(10)},
			members:   members,
			wantErr:   ErrUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeSettlement(tt.requester, tt.rec, tt.members)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AuthorizeSettlement() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The guard does not cap the amount at the outstanding debt. A creditor can
// legally record more than is owed, flipping the net direction.
func TestAuthorizeSettlementDoesNotCheckOutstandingDebt(t *testing.T) {
	members := []Member{{ID: "A", Name: "alice"}, {ID: "B", Name: "bob"}}
	rec := Settlement{DebtorID: "B", CreditorID: "A", Amount: FromFloat(1000000)}

	if err := AuthorizeSettlement("A", rec, members); err != nil {
		t.Errorf("AuthorizeSettlement() error = %v, want nil", err)
	}
}
