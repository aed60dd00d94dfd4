/*
Package config manages configuration parsing and validation for enumerize.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads generator defaults (indentation, sort order, data keys)
- Decides the prompt cancellation policy
- Configures file backups and batch behavior

🔄 Flow:
1. Picks a parser by file extension
2. Decodes with unknown fields rejected
3. Validates values and fills defaults
4. Command flags override the result

🔍 Example:

	# .enumerize.yaml
	tab_size: 2
	sort: asc
	data_keys: label, description
	on_cancel: abort
	backup: true
	ignore_patterns:
	  - "vendor/**"
	jobs: 8

	# .enumerize.hcl
	tab_size  = 2
	on_cancel = "default"
	data_keys = env.ENUMERIZE_KEYS
*/
package config
