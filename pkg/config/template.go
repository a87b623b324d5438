package config

// Template is the commented starter configuration written by "spellscan init".
const Template = `# spellscan configuration
#
# Glob patterns for files and directories to skip.
ignore:
  - "*.min.js"
  - "build/**"

# Glob patterns to restrict scanning to. Empty means every text file.
include: []

# File extensions to scan (with leading dot). Empty means every text file
# that is not detected as binary.
extensions: []

# Honor the working directory's .gitignore during discovery.
gitignore: true

# Traverse directory symlinks.
follow_symlinks: false

# Number of parallel workers (0 = one per CPU).
jobs: 0
`
