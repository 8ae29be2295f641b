// Package ports defines the interfaces between the boundary layer and its
// collaborators. The regex engine is consumed strictly as a black box: its
// parsing, automaton construction, and search algorithms are assumed correct
// and are not re-specified here.
package ports
