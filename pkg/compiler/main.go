// Package compiler implements the AkbarLang-to-C++ translation pipeline:
// source text → Lex → Parse → Analyze → Generate (IR) → Optimize → Emit → C++ source text.
package compiler
