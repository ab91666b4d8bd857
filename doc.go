// Package bikeshare runs the interactive bike-share statistics session:
// it asks for a city, month and day, loads and filters the city's trips,
// prints time, station, duration and user statistics, pages through raw
// rows on request and offers to start over.
package bikeshare
