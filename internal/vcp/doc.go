// Package vcp turns a user-supplied feature identifier into the VCP
// (Virtual Control Panel) code string handed to ddcutil.
//
// Resolution walks an ordered list of rules and stops at the first match:
//
//  1. one or two hex digits, uppercased as-is ("a" -> "A", "1f" -> "1F")
//  2. "0x" followed by hex digits, prefix stripped and uppercased
//  3. an unsigned 8-bit decimal, formatted as two uppercase hex digits
//  4. a known feature name ("brightness", "contrast")
//
// Single hex digits are not zero-padded, and the name table holds the
// literal strings ddcutil has always been given for those features.
package vcp
