// Package formurl holds the URL plumbing shared by field extraction and
// submission: the injectable parser capability, the malformed URL error, an
// order-preserving query parameter list and the view/response path rewrite
// used by hosted survey forms.
package formurl
