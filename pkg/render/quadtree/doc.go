// Package quadtree renders the split ancestry of a drawing as a Graphviz
// node-link diagram. It is a debug surface: the engine itself works on flat
// region lists, but every split records its parent, so the full lineage can
// be reconstructed and inspected when tuning the subdivision policy.
package quadtree
