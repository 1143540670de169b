// Package conversation provides the messaging domain model: chat threads
// between marketplace users, optionally tied to a listing.
//
// A Conversation is keyed by its unordered participant pair plus the optional
// listing reference, so starting a thread for the same pair and listing
// reuses the existing one. The aggregate tracks per-participant unread counts
// and a preview of the last message; Message entities hold the texts.
//
// Messaging is independent of the order workflow.
package conversation
