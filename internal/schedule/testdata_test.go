package schedule

// Fixtures shaped like text copied from the class schedule list view.

const inlineSchedule = `CS 452 - Real-time Programming
1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025

MATH 239 - Introduction to Combinatorics
5678 002 LEC TTh 01:00PM - 02:20PM DWE 3522A Jane Doe 01/06/2025 - 04/04/2025

ECE 356 - Database Systems
9012 003 LEC MW 02:30PM - 03:50PM EIT 1015 Bob Smith 01/06/2025 - 04/04/2025
`

const inline24HourSchedule = `CS 452 - Real-time Programming
1234 001 LEC MWF 10:30 - 11:20 MC 2066 William B Cowan 01/06/2025 - 04/04/2025

MATH 239 - Introduction to Combinatorics
5678 002 LEC TTh 13:00 - 14:20 DWE 3522A Jane Doe 01/06/2025 - 04/04/2025
`

const columnarSchedule = `CS 452 - Real-time Programming
Status	Units	Grading	Grade	Deadlines
Enrolled
0.50
Numeric Grading Basis

Class Nbr	Section	Component	Days & Times	Room	Instructor	Start/End Date
5678
001
LEC
TTh 1:00PM - 2:20PM
MC 4045
David R Cheriton,
Jane Smith
01/06/2025 - 04/04/2025
5679
101
TUT
F 9:30AM - 10:20AM
MC 4021
Staff
01/06/2025 - 04/04/2025
`

const tabbedSchedule = "CS 343 - Concurrent and Parallel Programming\n" +
	"Class Nbr\tSection\tComponent\tDays & Times\tRoom\tInstructor\tStart/End Date\n" +
	"4321\t001\tLEC\tTTh 8:30AM - 9:50AM\tMC 2035\tPeter Buhr\t01/06/2025 - 04/04/2025\n" +
	"4322\t101\tTUT\tW 4:30PM - 5:20PM\tMC 4060\tTBA\t01/06/2025 - 04/04/2025\n"

const continuationSchedule = `ECE 356 - Database Systems
9012
001
LEC
MW 2:30PM - 3:50PM
EIT 1015
Peter Van Beek
01/06/2025 - 04/04/2025
 
 
 
F 2:30PM - 3:20PM
EIT 1015
Peter Van Beek
01/06/2025 - 04/04/2025
`

const tbaSchedule = `CS 452 - Real-time Programming
1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025
1235 002 LEC TBA MC 2066 William B Cowan 01/06/2025 - 04/04/2025
`
