package listing

import "github.com/nmehta/movebot/internal/model"

// SelectCredential picks which stored credential a fetch uses.
//
// Current policy: the first record in stored order. Exactly one
// credential is used per fetch; there is no retry with a second record.
// A future preference- or freshness-based selection replaces only this
// function.
func SelectCredential(records []model.CredentialRecord) (model.CredentialRecord, bool) {
	if len(records) == 0 {
		return model.CredentialRecord{}, false
	}
	return records[0], true
}
