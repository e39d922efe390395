package registration

import "time"

// FindAge calcula la edad en años cumplidos a la fecha today.
//
// Aproxima la posición dentro del año como mes*31 + día, así que puede equivocarse en un año
// cerca de fin de mes y con el 29 de febrero. Se mantiene así a propósito.
func FindAge(dateOfBirth, today time.Time) int {
	ty, tm, td := today.Date()
	by, bm, bd := dateOfBirth.Date()
	todayOffset := int(tm-1)*31 + td
	birthOffset := int(bm-1)*31 + bd
	age := ty - by
	if todayOffset < birthOffset {
		age--
	}
	return age
}
