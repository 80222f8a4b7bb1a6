// Package starter lists the 27 starter species (fire, grass and water from
// every generation) and hands the user's pick to the roster.
package starter
