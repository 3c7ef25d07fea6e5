// Package catalog resolves the list of animations an export run works
// through.
//
// Three sources exist, one per export mode:
//   - Manifest reads a local JSON object mapping animation id to description.
//   - Search pages through the remote product search and accumulates every
//     page before returning.
//   - TPose yields a single synthetic entry for the character's own mesh.
//
// Every source returns an ordered domain.Catalog with unique IDs. When an ID
// repeats, the entry keeps its first position and takes the later
// description.
package catalog
