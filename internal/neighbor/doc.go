// Package neighbor provides the radius-neighbor collaborator used by the
// ball cover: a cover tree over the filter points answering closed-ball
// queries ("every point within radius r of the query, including itself").
// Subtree radii are cached per construction version and used to prune
// branches that cannot reach the query ball.
package neighbor
