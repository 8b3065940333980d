/*
Package domain contains the core domain models for the Ageis pipeline.

It defines the entities of the routing state machine: the Query, the
per-run execution State, specialist StageResults, the declarative
Visualization descriptor, and the terminal Answer. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Query: The immutable user question plus the identity it concerns.
  - State: The mutable per-query aggregate, owned by one stage at a time.
  - StageResult: A specialist's contribution, with degradation encoded.
  - Visualization: A renderer-agnostic chart descriptor.
  - Answer: The terminal output with provenance.
*/
package domain
