// Package channel implements the timestamp-bound confidential message
// exchange.
//
// A message is sealed to the recipient's public key with RSA-OAEP; the
// send timestamp is prepended to the plaintext ("timestamp|message") before
// encryption and also handed back to the sender, who conveys it out of
// band. On open, the embedded timestamp must equal the expected one by
// exact string comparison.
package channel
