package snowbase

// ValidationError is the sentinel returned for a missing required
// field. It is returned, never raised; Reason is surfaced verbatim in
// the response envelope.
type ValidationError struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func invalidField(name string) *ValidationError {
	return &ValidationError{Status: StatusUnsuccessful, Reason: "invalid " + name}
}

// ValidateConnectionParams checks the required connection fields and
// returns the first failure only: account before username before
// password. Nil when all three are present.
func ValidateConnectionParams(account, username, password string) *ValidationError {
	if account == "" {
		return invalidField("account")
	}
	if username == "" {
		return invalidField("username")
	}
	if password == "" {
		return invalidField("password")
	}
	return nil
}

// ValidatePreviewParams checks database, schema and relation in that
// fixed order and returns every failure. Callers surface only the
// first item.
func ValidatePreviewParams(database, schema, relation string) []*ValidationError {
	var errs []*ValidationError
	if database == "" {
		errs = append(errs, invalidField("database"))
	}
	if schema == "" {
		errs = append(errs, invalidField("schema"))
	}
	if relation == "" {
		errs = append(errs, invalidField("relation"))
	}
	return errs
}
