/*
Package console is a reference host for [command.Command] definitions.

It plays the part that a game server or chat bot would normally play: it owns the set of commands, splits input into tokens, and hands the tokens to the command's dispatch boundary.

There are a few policies for how this operates.

  - User-visible output goes to STDERR by default. This is supported with a configurable [Printer], which is also the console [command.Sender].
  - Input is split on whitespace only. There's no quoting, and no flag grammar beyond the option tokens a [command.Context] already extracts.
  - Command keys are matched case-insensitive, and aliases are supported as additional, optional parameters to [Host.AddCommand].
  - A failed assertion in a handler is the command's own business. It's logged at warn level, and the host carries on.

# Interactive mode

[Host.Interactive] runs a prompt loop.
If the input is a terminal, then it's put into raw mode with [golang.org/x/term] so tab completion is available, which is driven by each command's [command.TabHandler].
Otherwise, input is read line by line.

To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt, or send EOF.
*/
package console
