// Package party creates signing parties.
//
// A party is one participant of the co-signing workflow: an RSA key pair
// held exclusively by the participant plus a self-asserted certificate
// naming them. Keys live for the party's session and are never persisted.
package party
