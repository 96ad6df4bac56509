// Package commands defines the origenctl CLI, a terminal client that runs
// the study engine in-process.
//
// Commands
//
//   - topics       List the study topics
//   - learn        Print the definitions of a topic
//   - quiz         Take a topic quiz interactively
//   - hangman      Play hangman interactively
//   - demo         Run a scripted walkthrough of every mode
//   - generations  Show the Content Provider journal
//
// # Implementation
//
// The root command loads the environment configuration, opens the journal
// and starts an engine before any subcommand runs; flags override the
// provider and journal settings.
package commands
