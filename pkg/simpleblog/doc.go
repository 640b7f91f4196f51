// Package simpleblog provides an in-memory blog content store with
// referential integrity between authors, posts and comments.
//
// A single Service interface exposes every operation. Write operations take an
// untrusted Payload, run it through a validation pipeline built from Result
// combinators, and either commit the next Snapshot atomically or return an
// error whose Kind says why nothing changed.
//
// Identity
//
// Authors carry a caller-supplied id. A post's id is always the slug of its
// title (see DerivePostID), so retitling a post changes its address. Comments
// have no id and are addressed by their index within the owning post.
//
// Cascade
//
// Deleting an author removes the author, every post they wrote and every
// comment they left on other posts in one commit.
//
// The transport, configuration and seed loading live in the api, config and
// seed subpackages.
package simpleblog
