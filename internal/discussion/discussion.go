// Package discussion turns a game's flat reply-edge list into the ordered,
// depth-annotated forest the thread view renders.
package discussion

import "gameshelf/client/internal/models"

// UnknownUser is the display name used when a parent author cannot be
// resolved.
const UnknownUser = "unknown user"

// ThreadNode is one rendered row of a discussion thread.
type ThreadNode struct {
	Item models.DiscussionItem

	// Depth is 0 for top-level items and parent depth + 1 below; purely
	// display indentation.
	Depth int

	// HasParent is true when the item declared a reply target, even if that
	// target could not be resolved.
	HasParent bool

	// ParentAuthor is the display name of the parent item's author,
	// UnknownUser when the parent or its author is unresolvable, "" for
	// top-level items.
	ParentAuthor string

	// ReplyCount is the number of direct children, not the subtree size.
	ReplyCount int
}

// BuildThreads renders the items depth-first: each top-level item is
// followed immediately by its replies, siblings in input order. Items whose
// reply target does not exist in the input are rendered as extra top-level
// roots after the genuine ones instead of being dropped. Reply cycles in
// malformed data terminate (each item renders at most once); items only
// reachable through a cycle stay unrendered.
func BuildThreads(items []models.DiscussionItem, users map[string]models.UserInfo) []ThreadNode {
	byID := make(map[string]models.DiscussionItem, len(items))
	for _, item := range items {
		if _, dup := byID[item.ID]; !dup {
			byID[item.ID] = item
		}
	}

	children := make(map[string][]models.DiscussionItem)
	for _, item := range items {
		if item.ReplyID != "" {
			children[item.ReplyID] = append(children[item.ReplyID], item)
		}
	}

	visited := make(map[string]bool, len(items))
	var nodes []ThreadNode

	var walk func(item models.DiscussionItem, depth int)
	walk = func(item models.DiscussionItem, depth int) {
		if visited[item.ID] {
			return
		}
		visited[item.ID] = true

		nodes = append(nodes, ThreadNode{
			Item:         item,
			Depth:        depth,
			HasParent:    item.ReplyID != "",
			ParentAuthor: parentAuthor(item, byID, users),
			ReplyCount:   len(children[item.ID]),
		})
		for _, child := range children[item.ID] {
			walk(child, depth+1)
		}
	}

	for _, item := range items {
		if item.ReplyID == "" {
			walk(item, 0)
		}
	}

	// orphaned replies: declared parent never arrived, render them as roots
	for _, item := range items {
		if item.ReplyID != "" {
			if _, ok := byID[item.ReplyID]; !ok {
				walk(item, 0)
			}
		}
	}

	return nodes
}

func parentAuthor(item models.DiscussionItem, byID map[string]models.DiscussionItem, users map[string]models.UserInfo) string {
	if item.ReplyID == "" {
		return ""
	}
	parent, ok := byID[item.ReplyID]
	if !ok {
		return UnknownUser
	}
	if user, ok := users[parent.UserID]; ok && user.Name != "" {
		return user.Name
	}
	return UnknownUser
}
