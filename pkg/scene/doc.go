// Package scene defines the scene node registry for regraft.
// A registry holds the flat set of nodes produced by a geometry import
// plus any grouping nodes synthesized during hierarchy reconstruction.
// The parent relation always forms a forest; Reparent is the only
// mutation primitive and never moves geometry in world space.
package scene
