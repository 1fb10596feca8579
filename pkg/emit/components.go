package emit

import (
	"fmt"
	"sort"
	"strings"
)

// ComponentNames returns the fixed component shapes this package can stamp
// out, sorted.
func ComponentNames() []string {
	names := make([]string, 0, len(componentTemplates))
	for name := range componentTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component renders the React TSX source for one of the fixed component
// shapes (Button, Card, Modal, Input). The templates consume the CSS
// variables emitted by CSSVariables, so the same tree must back both
// outputs. Unknown names are an error.
func Component(name string) (string, error) {
	tpl, ok := componentTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown component %q (have %s)", name, strings.Join(ComponentNames(), ", "))
	}
	return tpl, nil
}

const header = "/** Generated by tokenforge. Do not edit by hand. */\n"

var componentTemplates = map[string]string{
	"Button": header + `import * as React from "react";

export interface ButtonProps extends React.ButtonHTMLAttributes<HTMLButtonElement> {
  variant?: "primary" | "secondary" | "ghost";
  size?: "sm" | "md" | "lg";
}

const variantStyles: Record<string, React.CSSProperties> = {
  primary: {
    background: "var(--color-primary-600, var(--color-neutral-900))",
    color: "#ffffff",
  },
  secondary: {
    background: "var(--color-neutral-100)",
    color: "var(--color-neutral-900)",
  },
  ghost: {
    background: "transparent",
    color: "var(--color-neutral-700)",
  },
};

const sizeStyles: Record<string, React.CSSProperties> = {
  sm: { height: "var(--sizing-control-sm)", padding: "0 var(--spacing-sm)" },
  md: { height: "var(--sizing-control-md)", padding: "0 var(--spacing-md)" },
  lg: { height: "var(--sizing-control-lg)", padding: "0 var(--spacing-lg)" },
};

export function Button({ variant = "primary", size = "md", style, ...props }: ButtonProps) {
  return (
    <button
      style={{
        border: "none",
        borderRadius: "var(--radius-md)",
        fontFamily: "var(--typography-fontFamily-primary)",
        fontWeight: "var(--typography-fontWeight-medium)" as React.CSSProperties["fontWeight"],
        transitionDuration: "var(--transition-duration-fast)",
        cursor: "pointer",
        ...variantStyles[variant],
        ...sizeStyles[size],
        ...style,
      }}
      {...props}
    />
  );
}
`,

	"Card": header + `import * as React from "react";

export interface CardProps extends React.HTMLAttributes<HTMLDivElement> {
  title?: string;
}

export function Card({ title, children, style, ...props }: CardProps) {
  return (
    <div
      style={{
        background: "#ffffff",
        border: "1px solid var(--color-neutral-200)",
        borderRadius: "var(--radius-lg)",
        boxShadow: "var(--shadow-md)",
        padding: "var(--spacing-lg)",
        fontFamily: "var(--typography-fontFamily-primary)",
        ...style,
      }}
      {...props}
    >
      {title ? <h3 style={{ marginTop: 0, color: "var(--color-neutral-900)" }}>{title}</h3> : null}
      {children}
    </div>
  );
}
`,

	"Modal": header + `import * as React from "react";

export interface ModalProps {
  open: boolean;
  title: string;
  onClose: () => void;
  children?: React.ReactNode;
}

export function Modal({ open, title, onClose, children }: ModalProps) {
  if (!open) {
    return null;
  }
  return (
    <div
      role="dialog"
      aria-modal="true"
      aria-label={title}
      style={{
        position: "fixed",
        inset: 0,
        background: "rgb(0 0 0 / 0.5)",
        display: "flex",
        alignItems: "center",
        justifyContent: "center",
      }}
      onClick={onClose}
    >
      <div
        style={{
          background: "#ffffff",
          borderRadius: "var(--radius-xl)",
          boxShadow: "var(--shadow-xl)",
          padding: "var(--spacing-xl)",
          maxWidth: "var(--sizing-container-sm)",
          fontFamily: "var(--typography-fontFamily-primary)",
        }}
        onClick={(e) => e.stopPropagation()}
      >
        <h2 style={{ marginTop: 0, color: "var(--color-neutral-900)" }}>{title}</h2>
        {children}
      </div>
    </div>
  );
}
`,

	"Input": header + `import * as React from "react";

export interface InputProps extends React.InputHTMLAttributes<HTMLInputElement> {
  label: string;
  error?: string;
}

export function Input({ label, error, id, style, ...props }: InputProps) {
  const inputId = id ?? label.toLowerCase().replace(/\s+/g, "-");
  return (
    <label htmlFor={inputId} style={{ display: "block", fontFamily: "var(--typography-fontFamily-primary)" }}>
      <span style={{ color: "var(--color-neutral-700)", fontWeight: 500 }}>{label}</span>
      <input
        id={inputId}
        aria-invalid={error ? true : undefined}
        style={{
          display: "block",
          width: "100%",
          height: "var(--sizing-control-md)",
          marginTop: "var(--spacing-xs)",
          padding: "0 var(--spacing-sm)",
          border: error
            ? "1px solid var(--color-semantic-error)"
            : "1px solid var(--color-neutral-300)",
          borderRadius: "var(--radius-md)",
          ...style,
        }}
        {...props}
      />
      {error ? <span style={{ color: "var(--color-semantic-error)" }}>{error}</span> : null}
    </label>
  );
}
`,
}
