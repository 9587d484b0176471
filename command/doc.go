/*
Package command provides the request-scoped [Context] a command handler works with.

A [Context] is created for each invocation of a [Command].
It splits the raw tokens into options (tokens starting with the option prefix, "-" by default) and positional arguments, and resolves arguments to typed values through an [argument.Registry].

# Assertions

Handlers validate input by asserting on the [Context].
A failed assertion optionally replies to the [Sender] with a message, then aborts the handler by panicking with an [*AssertionError].
This makes validation chains read top to bottom without error plumbing:

	func give(ctx *command.Context) {
		player := ctx.AssertPlayer(command.Text("Only players can do that"))
		amount := command.ValidateArgument[int](ctx, 0, command.Text("Expected a number"))
		player.Reply(command.Text("Gave you %d", amount))
	}

The abort is recovered exactly once, at the dispatch boundary in [Command.Execute] (or by calling [Catch] directly), and reported as an error value.
Any other panic is not recovered.

Asking for an argument type with nothing registered in the [argument.Registry] is a programming error, and panics with an error wrapping [argument.ErrNoParser] instead of aborting.
*/
package command
