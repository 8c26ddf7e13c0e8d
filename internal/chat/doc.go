// Package chat is the conversation layer for one-to-one direct
// messages. Screens hold display names; this package resolves them to
// account ids before any row is written, so history can never reference
// a participant that doesn't exist.
package chat
