package snowbase

import "testing"

func TestValidateConnectionParams(t *testing.T) {
	tests := []struct {
		name       string
		account    string
		username   string
		password   string
		wantReason string
	}{
		{"all missing", "", "", "", "invalid account"},
		{"account first even when others missing too", "", "u", "", "invalid account"},
		{"username second", "acct1", "", "", "invalid username"},
		{"username before password", "acct1", "", "p", "invalid username"},
		{"password third", "acct1", "u", "", "invalid password"},
		{"all present", "acct1", "u", "p", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateConnectionParams(tt.account, tt.username, tt.password)
			if tt.wantReason == "" {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected reason %q, got nil", tt.wantReason)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if got.Status != StatusUnsuccessful {
				t.Errorf("status = %q, want %q", got.Status, StatusUnsuccessful)
			}
		})
	}
}

func TestValidatePreviewParams(t *testing.T) {
	tests := []struct {
		name        string
		database    string
		schema      string
		relation    string
		wantReasons []string
	}{
		{"all missing", "", "", "", []string{"invalid database", "invalid schema", "invalid relation"}},
		{"database missing", "", "sch", "rel", []string{"invalid database"}},
		{"schema missing", "db", "", "rel", []string{"invalid schema"}},
		{"relation missing", "db", "sch", "", []string{"invalid relation"}},
		{"schema and relation missing keeps order", "db", "", "", []string{"invalid schema", "invalid relation"}},
		{"all present", "db", "sch", "rel", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePreviewParams(tt.database, tt.schema, tt.relation)
			if len(got) != len(tt.wantReasons) {
				t.Fatalf("got %d failures, want %d", len(got), len(tt.wantReasons))
			}
			for i, want := range tt.wantReasons {
				if got[i].Reason != want {
					t.Errorf("failure[%d] = %q, want %q", i, got[i].Reason, want)
				}
			}
		})
	}
}
