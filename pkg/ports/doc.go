/*
Package ports defines the interfaces between the Ageis core and the outside
world, following Hexagonal Architecture.

The pipeline core (orchestrator, analyzers, visualizer, summarizer) depends
only on these interfaces. Adapters (memory, redis, loam, gemini, rules)
implement them.
*/
package ports
