package config

// calendar.paths doubles as the include search path for '#include'
// directives inside calendar files.
var DefaultConfig string = `
logging:
  console-level: 5
  file-level: -1

calendar:
  paths:
    - ~/.calendar
    - /etc/calendar
    - /usr/share/calendar
    - /usr/local/share/calendar

window:
  friday: 5
  ahead: 1
  friday-ahead: 3
  behind: 0

print:
  weekday: false
`
