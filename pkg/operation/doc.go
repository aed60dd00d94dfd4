/*
Package operation implements the enumerize operation: it resolves the range
to rewrite, collects generator parameters, renders the enum and replaces the
range in one edit.

	+-------------+     +-------------+     +-------------+
	|  Document   | --> |  Operation  | <-- |  Prompter   |
	| (range/text)|     | (pipeline)  |     |  (values)   |
	+-------------+     +------+------+     +-------------+
	                           |
	                    +------+------+
	                    |   enumgen   |
	                    |  (render)   |
	                    +-------------+

🔄 Flow:
1. Resolves the range (collapsed selection means the whole document)
2. Reads and validates the text in that range
3. Prompts for name, data keys and sort mode, in that order
4. Renders the enum and data table
5. Replaces the range with a single edit

🛑 Cancellation:
A cancelled prompt either aborts with ErrCancelled and leaves the document
untouched (config.CancelAbort) or substitutes defaults (config.CancelDefault).

⚡ Batch:
Runner executes one Job per document, concurrently up to a limit, and logs
every outcome through the console logger.
*/
package operation
