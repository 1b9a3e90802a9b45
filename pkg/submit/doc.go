// Package submit turns collected answers into the hosted form's response URL
// and hands it to a Navigator. BuildURL is pure; opening the URL is the only
// side effect and it is fire-and-forget: nothing reports whether the remote
// service accepted the response.
package submit
