// Package variance shows how read-only and write-only generic types stand in
// for covariant and contravariant ones, and how a closed interface gives an
// exhaustive switch over vehicle kinds.
package variance
