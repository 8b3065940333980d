/*
Package ageis is a supervisor-mediated routing pipeline that answers natural-language questions about pension accounts: risk profiles, fraud signals, savings projections, and uploaded plan documents.

It implements a "star topology with a single decision authority" architecture: specialist stages never talk to each other, and after every stage control returns to a central orchestrator that inspects accumulated state and picks the next hop.

# Concept

Ageis treats each query as a short, bounded state machine run. A keyword router picks at most one specialist (risk, fraud, or projection); the specialist scores the account deterministically and narrates the result; an optional visualizer turns the result into a declarative chart descriptor; and a summarizer always produces the terminal answer. Failures degrade (the answer says what was unavailable) instead of aborting, and sequencing bugs surface as protocol violations instead of wrong answers.

# Key Features

  - Deterministic Routing: Given the same query and records, every routing decision is reproducible.
  - Hexagonal Architecture: Core logic is decoupled from adapters (Storage, LLM, Documents, HTTP, MCP).
  - Graceful Degradation: Missing records, scorer failures, and narration timeouts all yield a usable answer.
  - Strict Protocol: Duplicate stage results and out-of-order stages fail fast as protocol violations.

# Usage

Initialize the pipeline with a record accessor; the deterministic rule-based collaborators are the default, so no external services are required.

	package main

	import (
		"context"
		"fmt"
		"log"

		ageis "github.com/shlokkku/Ageis-AI"
		"github.com/shlokkku/Ageis-AI/pkg/adapters/memory"
		"github.com/shlokkku/Ageis-AI/pkg/domain"
	)

	func main() {
		records := memory.NewRecordStore()
		records.Seed(domain.Record{
			ID:                 "user-1",
			AnnualIncome:       60000,
			DebtLevel:          10000,
			Volatility:         0.2,
			PortfolioDiversity: 0.8,
			CurrentSavings:     50000,
			Age:                40,
			RetirementAgeGoal:  65,
			ContributionAmount: 6000,
			AnnualReturnRate:   0.05,
		})

		pipeline, err := ageis.New(records)
		if err != nil {
			log.Fatal(err)
		}

		ans, err := pipeline.Ask(context.Background(), domain.Query{
			Text:     "What's my risk score?",
			Identity: "user-1",
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(ans.Text)
	}
*/
package ageis
