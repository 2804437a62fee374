package help

// ColdstartYAML is printed by `wordfreq quickstart`. The config block is a
// valid wordfreq.yaml on its own.
const ColdstartYAML = `# wordfreq Quick Start

commands:
  basic_run: |
    wordfreq                        # reads filenames.txt, writes <file>_report.txt
  custom_list: |
    wordfreq --list inputs.txt --output-dir reports
  structured_summary: |
    wordfreq --format yaml --top 20
  html_inputs: |
    wordfreq --html --detect-language --format json
  inspect_tokens: |
    wordfreq tokens notes.txt

exit_codes:
  0: "all files reported"
  1: "some files could not be read"
  2: "filename list or config unreadable, or every file failed"

config:
  filenames_file: filenames.txt
  output_dir: ""
  report_suffix: _report.txt
  extract_html: false
  uniform_brackets: false
  detect_language: false
  languages: [english, french, german]
  top_keywords: 10
  format: text
`
