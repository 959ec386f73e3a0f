// Package hierarchy rebuilds a parent/child forest over a flat scene
// registry. Two independent passes contribute edges: suffix-convention
// grouping (instance names like "Obj.195:1" collect under "Obj.195") and
// matching against an externally supplied object tree. Both passes are
// best-effort: any failure degrades to flatter hierarchy, never to an
// aborted run.
package hierarchy
