// Package cmd provides helpers for executing external commands with proper error handling.
//
// Commands run through [os/exec.CommandContext] so that an interrupt
// cancels git and package-manager processes. Stderr is captured and used
// as the error message, which keeps failures such as a missing git
// identity readable in warnings.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, dest, "git", "init"); err != nil {
//	    // err contains stderr output if available
//	}
//
//	out, err := cmd.OutputContext(ctx, "", "git", "--version")
//
// Every invocation is reported to the context logger, which prints it in
// verbose mode together with its duration.
package cmd
