/*
 * errors.go, part of goNCI.
 *
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package nci

import "fmt"

//CError is the general structure for errors in the nci package. It fulfills Error and FileError.
type CError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

//NewError returns a critical *CError with the given message, file name and caller.
func NewError(message, filename, caller string) *CError {
	return &CError{message, filename, []string{caller}, true}
}

func (err *CError) Error() string {
	if err.filename == "" {
		return "goNCI: " + err.message
	}
	return fmt.Sprintf("goNCI: file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error was associated, if any
func (err *CError) FileName() string { return err.filename }

//Format returns the format of the file associated to the error, or an
//empty string if the error is not associated to a file.
func (err *CError) Format() string {
	if err.filename == "" {
		return ""
	}
	return "xyz"
}

//Critical returns true if the error is critical, false otherwise
func (err *CError) Critical() bool { return err.critical }

const (
	UnableToOpen   = "Unable to open file"
	WrongFormat    = "Wrong format in the XYZ file"
	UnknownElement = "Unknown element"
	EOF            = "Unexpected end of file"
)
