/*
Package form runs a questionnaire described in YAML (or JSON) through a Prompter.

A form lists questions in order. Each question names the prompt shape (string, bool,
number, number_range, multi_string, multi_number) and its constraints:

	title: STAR TREK
	instructions:
	  ask: true
	  mode: one_zero
	  question: DO YOU NEED INSTRUCTIONS (1 OR 0)?
	  multiline: true
	  body:
	    - YOU ARE THE CAPTAIN OF THE STARSHIP ENTERPRISE.
	    - DESTROY THE KLINGON INVADERS.
	questions:
	  - id: course
	    kind: number_range
	    message: COURSE (1-9)?
	    range: 1..9
	    float: true
	  - id: sector
	    kind: multi_number
	    message: COORDINATES X,Y?
	    separator: ","
	    count: 2
	    range: 1..8

Answers keep the order of the questions and marshal to a YAML mapping.
*/
package form
