/*
Package ports defines the driven ports (interfaces) of the bwtnet converter.

These interfaces decouple the conversion core from external implementations.

# Key Interfaces

  - TransformCache: remembers transform results keyed by direction and body.
*/
package ports
